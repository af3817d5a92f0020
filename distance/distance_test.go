package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float32
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 0},
		{name: "unit apart", a: []float32{0, 0}, b: []float32{0, 1}, want: 1},
		{name: "pythagorean", a: []float32{0, 0}, b: []float32{3, 4}, want: 25},
		{name: "negative coords", a: []float32{-1, -1}, b: []float32{1, 1}, want: 8},
		{name: "single dim", a: []float32{2.5}, b: []float32{0.5}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SquaredL2(tt.a, tt.b), 1e-6)
		})
	}
}

func TestL2(t *testing.T) {
	assert.InDelta(t, 5.0, L2([]float32{0, 0}, []float32{3, 4}), 1e-6)
}

func TestSquaredL2Checked(t *testing.T) {
	d, err := SquaredL2Checked([]float32{0, 0}, []float32{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, d, 1e-6)

	_, err = SquaredL2Checked([]float32{0, 0}, []float32{0, 0, 0})
	assert.Error(t, err)
}
