package quantize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clustergo"
)

// A 6-"pixel" RGB image with two exact colors.
var twoColorPixels = []float32{
	1, 0, 0,
	1, 0, 0,
	1, 0, 0,
	0, 0, 1,
	0, 0, 1,
	0, 0, 1,
}

func TestQuantizeTwoColors(t *testing.T) {
	q, err := New(2, 3, clustergo.WithSeed(42))
	require.NoError(t, err)

	img, err := q.Quantize(context.Background(), twoColorPixels)
	require.NoError(t, err)

	assert.Equal(t, 6, img.Len())
	assert.InDelta(t, 0.0, img.SSE, 1e-9, "two exact colors and k=2 must be lossless")

	// Reconstruction preserves pixel order and values exactly.
	assert.Equal(t, twoColorPixels, img.Reconstruct())

	// Same color, same palette entry.
	assert.Equal(t, img.Index[0], img.Index[1])
	assert.Equal(t, img.Index[3], img.Index[5])
	assert.NotEqual(t, img.Index[0], img.Index[3])
}

func TestQuantizeLossy(t *testing.T) {
	// Four grays, palette of two: reconstruction collapses to two values.
	pixels := []float32{0.0, 0.1, 0.8, 0.9}

	q, err := New(2, 1, clustergo.WithSeed(7), clustergo.WithNumStarts(4))
	require.NoError(t, err)

	img, err := q.Quantize(context.Background(), pixels)
	require.NoError(t, err)

	distinct := map[float32]struct{}{}
	for _, v := range img.Reconstruct() {
		distinct[v] = struct{}{}
	}
	assert.Len(t, distinct, 2)
	assert.InDelta(t, 0.01, img.SSE, 1e-4, "best split is {0,0.1} and {0.8,0.9}")
}

func TestQuantizeValidation(t *testing.T) {
	_, err := New(2, 0)
	assert.Error(t, err)

	_, err = New(0, 3)
	assert.Error(t, err)

	q, err := New(2, 3)
	require.NoError(t, err)

	// Truncated pixel at the end of the stream.
	_, err = q.Quantize(context.Background(), []float32{1, 2, 3, 4})
	var dm *clustergo.ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
}
