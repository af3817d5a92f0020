package clustergo

// Dataset is an ordered collection of same-dimensionality points, stored
// row-major as a flattened []float32. It is the read-only input to Fit:
// the engine never mutates it, and callers must not modify it while a fit
// is running.
type Dataset struct {
	dim  int
	data []float32
}

// NewDataset creates an empty dataset for points of the given dimensionality.
func NewDataset(dim int) (*Dataset, error) {
	if dim < 1 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	return &Dataset{dim: dim}, nil
}

// FromVectors builds a dataset from per-point slices. The dimensionality is
// taken from the first vector; any later vector of a different length fails
// with ErrDimensionMismatch.
func FromVectors(vecs [][]float32) (*Dataset, error) {
	if len(vecs) == 0 {
		return nil, ErrEmptyDataset
	}
	ds, err := NewDataset(len(vecs[0]))
	if err != nil {
		return nil, err
	}
	if err := ds.AppendAll(vecs); err != nil {
		return nil, err
	}
	return ds, nil
}

// FromRaw builds a dataset from an already-flattened row-major buffer.
// The buffer is copied; len(data) must be a multiple of dim.
//
// This is the natural entry point for pixel data: an image with C channels
// is a dataset of dim=C points in original pixel order.
func FromRaw(dim int, data []float32) (*Dataset, error) {
	if dim < 1 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	if rem := len(data) % dim; rem != 0 {
		// The trailing partial point is the offending "vector".
		return nil, &ErrDimensionMismatch{Expected: dim, Actual: rem}
	}
	ds := &Dataset{dim: dim, data: make([]float32, len(data))}
	copy(ds.data, data)
	return ds, nil
}

// Append adds one point. The point is copied.
func (d *Dataset) Append(vec []float32) error {
	if len(vec) != d.dim {
		return &ErrDimensionMismatch{Expected: d.dim, Actual: len(vec)}
	}
	d.data = append(d.data, vec...)
	return nil
}

// AppendAll adds points in order, stopping at the first dimension violation.
func (d *Dataset) AppendAll(vecs [][]float32) error {
	for _, v := range vecs {
		if err := d.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of points.
func (d *Dataset) Len() int {
	if d == nil || d.dim == 0 {
		return 0
	}
	return len(d.data) / d.dim
}

// Dim returns the dimensionality of the dataset's points.
func (d *Dataset) Dim() int {
	if d == nil {
		return 0
	}
	return d.dim
}

// At returns a view of point i. The caller must not modify it.
func (d *Dataset) At(i int) []float32 {
	return d.data[i*d.dim : (i+1)*d.dim]
}
