package quantize

import (
	"context"

	"github.com/hupe1980/clustergo"
)

// Quantizer reduces a fixed-channel vector stream to a small palette.
type Quantizer struct {
	km       *clustergo.KMeans
	channels int
}

// New creates a quantizer producing a palette of paletteSize entries for
// data with the given number of channels per entry.
func New(paletteSize, channels int, optFns ...clustergo.Option) (*Quantizer, error) {
	if channels < 1 {
		return nil, &clustergo.ErrInvalidDimension{Dimension: channels}
	}
	km, err := clustergo.New(paletteSize, optFns...)
	if err != nil {
		return nil, err
	}
	return &Quantizer{km: km, channels: channels}, nil
}

// Quantize clusters the flattened stream and returns the palette plus one
// palette index per entry, in original order. len(data) must be a multiple
// of the channel count.
func (q *Quantizer) Quantize(ctx context.Context, data []float32) (*Quantized, error) {
	ds, err := clustergo.FromRaw(q.channels, data)
	if err != nil {
		return nil, err
	}

	res, err := q.km.Fit(ctx, ds)
	if err != nil {
		return nil, err
	}

	palette := make([][]float32, res.K())
	for c := range palette {
		palette[c] = append([]float32(nil), res.Centroid(c)...)
	}

	return &Quantized{
		Channels: q.channels,
		Palette:  palette,
		Index:    res.Assignment,
		SSE:      res.SSE,
		Status:   res.Status,
	}, nil
}

// Quantized is a palettized stream: every input entry reduced to an index
// into Palette.
type Quantized struct {
	Channels int
	Palette  [][]float32
	Index    []int
	SSE      float64
	Status   clustergo.TerminationStatus
}

// Len returns the number of palettized entries.
func (m *Quantized) Len() int { return len(m.Index) }

// Reconstruct rebuilds the flattened stream with every entry replaced by its
// palette color, preserving the original order.
func (m *Quantized) Reconstruct() []float32 {
	out := make([]float32, len(m.Index)*m.Channels)
	for i, p := range m.Index {
		copy(out[i*m.Channels:(i+1)*m.Channels], m.Palette[p])
	}
	return out
}
