package clustergo

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/clustergo/distance"
)

// TerminationStatus reports how the winning run ended.
type TerminationStatus int

const (
	// StatusConverged means the run reached a stable fixed point.
	StatusConverged TerminationStatus = iota

	// StatusMaxIterations means the iteration cap stopped the run. The
	// result is valid and internally consistent, just not guaranteed to be
	// a fixed point.
	StatusMaxIterations
)

func (s TerminationStatus) String() string {
	switch s {
	case StatusConverged:
		return "Converged"
	case StatusMaxIterations:
		return "MaxIterationsReached"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Result is the output of a fit: final centroids, the point-to-cluster
// assignment, per-point squared distances, and the total SSE. All fields
// describe the same terminal state: SSE is exactly the sum of Distances,
// and Distances[i] is the squared distance from point i to
// Centroid(Assignment[i]).
type Result struct {
	dim       int
	centroids []float32 // flattened k*dim

	// Assignment maps point index (0..N-1) to cluster index (0..K-1).
	Assignment []int

	// Distances holds each point's squared distance to its assigned
	// centroid. External quality metrics (silhouette, elbow) build on it.
	Distances []float32

	// SSE is the sum of squared errors over all points.
	SSE float64

	// Status distinguishes stable convergence from a forced stop.
	Status TerminationStatus

	// Iterations is the number of assignment/update iterations executed.
	Iterations int

	// Run is the index of the winning start within a multi-start fit.
	Run int
}

// K returns the number of clusters.
func (r *Result) K() int { return len(r.centroids) / r.dim }

// Dim returns the dimensionality of centroids and accepted points.
func (r *Result) Dim() int { return r.dim }

// Len returns the number of clustered points.
func (r *Result) Len() int { return len(r.Assignment) }

// Centroid returns a view of centroid c. The caller must not modify it.
func (r *Result) Centroid(c int) []float32 {
	return r.centroids[c*r.dim : (c+1)*r.dim]
}

// Centroids returns views of all centroids in cluster-index order.
func (r *Result) Centroids() [][]float32 {
	out := make([][]float32, r.K())
	for c := range out {
		out[c] = r.Centroid(c)
	}
	return out
}

// Members returns the indices of the points assigned to cluster c.
func (r *Result) Members(c int) *roaring.Bitmap {
	bm := roaring.New()
	for i, a := range r.Assignment {
		if a == c {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// ClusterSizes returns the number of points per cluster.
func (r *Result) ClusterSizes() []int {
	sizes := make([]int, r.K())
	for _, a := range r.Assignment {
		sizes[a]++
	}
	return sizes
}

// Predict assigns a new point to its nearest centroid and returns the
// cluster index and squared distance. Ties go to the lowest-indexed
// centroid, matching the fitting rule.
func (r *Result) Predict(vec []float32) (int, float32, error) {
	if len(vec) != r.dim {
		return 0, 0, &ErrDimensionMismatch{Expected: r.dim, Actual: len(vec)}
	}

	best := 0
	minDist := distance.SquaredL2(vec, r.Centroid(0))
	for c := 1; c < r.K(); c++ {
		if d := distance.SquaredL2(vec, r.Centroid(c)); d < minDist {
			minDist = d
			best = c
		}
	}
	return best, minDist, nil
}

type centroidDist struct {
	id   int
	dist float32
}

// NearestCentroids returns the indices of the n closest centroids to vec,
// ordered by increasing distance (ties by index).
func (r *Result) NearestCentroids(vec []float32, n int) ([]int, error) {
	if len(vec) != r.dim {
		return nil, &ErrDimensionMismatch{Expected: r.dim, Actual: len(vec)}
	}

	k := r.K()
	if n > k {
		n = k
	}

	dists := make([]centroidDist, k)
	for c := 0; c < k; c++ {
		dists[c] = centroidDist{id: c, dist: distance.SquaredL2(vec, r.Centroid(c))}
	}

	sort.SliceStable(dists, func(i, j int) bool {
		return dists[i].dist < dists[j].dist
	})

	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = dists[i].id
	}
	return out, nil
}
