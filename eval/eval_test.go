package eval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clustergo"
)

// Two tight groups far apart.
var groupVectors = [][]float32{
	{0, 0}, {0, 1}, {1, 0},
	{10, 10}, {10, 11}, {11, 10},
}

func fitGroups(t *testing.T, k int) (*clustergo.Dataset, *clustergo.Result) {
	t.Helper()
	ds, err := clustergo.FromVectors(groupVectors)
	require.NoError(t, err)
	km, err := clustergo.New(k, clustergo.WithSeed(5), clustergo.WithNumStarts(6))
	require.NoError(t, err)
	res, err := km.Fit(context.Background(), ds)
	require.NoError(t, err)
	return ds, res
}

func TestSSEMatchesResult(t *testing.T) {
	ds, res := fitGroups(t, 2)
	assert.InDelta(t, res.SSE, SSE(ds, res), 1e-6)
}

func TestSilhouetteSeparatedClusters(t *testing.T) {
	ds, res := fitGroups(t, 2)

	// Guard: the multi-start fit found the natural split.
	require.Less(t, res.SSE, 3.0)

	s := Silhouette(ds, res)
	assert.Greater(t, s, 0.8, "well-separated clusters should score near 1")

	per := Silhouettes(ds, res)
	assert.Len(t, per, ds.Len())
	for _, v := range per {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestSilhouetteSingletons(t *testing.T) {
	// K = N: every cluster is a singleton, which scores 0 by convention.
	ds, res := fitGroups(t, len(groupVectors))
	assert.Equal(t, 0.0, Silhouette(ds, res))
}

func TestElbowCurve(t *testing.T) {
	ds, err := clustergo.FromVectors([][]float32{
		{0, 0}, {0, 1}, {10, 0}, {10, 1},
	})
	require.NoError(t, err)

	ks := []int{1, 2, 4}
	sses, err := ElbowCurve(context.Background(), ds, ks,
		clustergo.WithSeed(3), clustergo.WithNumStarts(8))
	require.NoError(t, err)
	require.Len(t, sses, len(ks))

	// k=1 is the dataset's total variance around its mean.
	assert.InDelta(t, 101.0, sses[0], 1e-4)
	// More clusters never hurt the best-of-N SSE on this dataset.
	assert.GreaterOrEqual(t, sses[0], sses[1])
	assert.GreaterOrEqual(t, sses[1], sses[2])
	// k=N is lossless.
	assert.InDelta(t, 0.0, sses[2], 1e-9)
}

func TestElbowCurveInvalidK(t *testing.T) {
	ds, err := clustergo.FromVectors(groupVectors)
	require.NoError(t, err)

	_, err = ElbowCurve(context.Background(), ds, []int{1, 0})
	assert.Error(t, err)
}
