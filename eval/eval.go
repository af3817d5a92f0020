package eval

import (
	"context"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/clustergo"
	"github.com/hupe1980/clustergo/distance"
)

// SSE recomputes the sum of squared errors of a result against its dataset.
// It must match Result.SSE; a deviation indicates a stale or corrupted result.
func SSE(ds *clustergo.Dataset, r *clustergo.Result) float64 {
	var sum float64
	for i := 0; i < ds.Len(); i++ {
		sum += float64(distance.SquaredL2(ds.At(i), r.Centroid(r.Assignment[i])))
	}
	return sum
}

// Silhouettes returns the silhouette coefficient of every point, in point
// order. Points in singleton clusters score 0 by convention. O(N²) in the
// dataset size.
func Silhouettes(ds *clustergo.Dataset, r *clustergo.Result) []float64 {
	n := ds.Len()
	k := r.K()
	sizes := r.ClusterSizes()

	out := make([]float64, n)
	meanDist := make([]float64, k)

	for i := 0; i < n; i++ {
		for c := range meanDist {
			meanDist[c] = 0
		}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			meanDist[r.Assignment[j]] += float64(distance.L2(ds.At(i), ds.At(j)))
		}

		own := r.Assignment[i]
		if sizes[own] <= 1 {
			continue
		}
		a := meanDist[own] / float64(sizes[own]-1)

		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == own || sizes[c] == 0 {
				continue
			}
			if m := meanDist[c] / float64(sizes[c]); m < b {
				b = m
			}
		}
		if math.IsInf(b, 1) || (a == 0 && b == 0) {
			continue
		}
		out[i] = (b - a) / math.Max(a, b)
	}
	return out
}

// Silhouette returns the mean silhouette coefficient over all points.
// Values near 1 indicate well-separated clusters; near 0, overlapping ones.
func Silhouette(ds *clustergo.Dataset, r *clustergo.Result) float64 {
	return stat.Mean(Silhouettes(ds, r), nil)
}

// ElbowCurve fits the dataset once per entry in ks and returns each fit's
// SSE, the raw material for elbow-method plots. The options apply to every
// fit.
func ElbowCurve(ctx context.Context, ds *clustergo.Dataset, ks []int, optFns ...clustergo.Option) ([]float64, error) {
	sses := make([]float64, len(ks))
	for i, k := range ks {
		km, err := clustergo.New(k, optFns...)
		if err != nil {
			return nil, err
		}
		res, err := km.Fit(ctx, ds)
		if err != nil {
			return nil, err
		}
		sses[i] = res.SSE
	}
	return sses, nil
}
