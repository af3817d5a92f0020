package clustergo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when a fit is attempted on a nil or empty dataset.
	ErrEmptyDataset = errors.New("empty dataset")
)

// ErrInvalidClusterCount indicates a cluster count outside [1, N].
//
// N is zero when the violation was detected before any dataset was seen
// (e.g. k < 1 at construction time).
type ErrInvalidClusterCount struct {
	K int
	N int
}

func (e *ErrInvalidClusterCount) Error() string {
	if e.N > 0 {
		return fmt.Sprintf("invalid cluster count: k=%d, dataset size %d", e.K, e.N)
	}
	return fmt.Sprintf("invalid cluster count: k=%d (k must be >= 1)", e.K)
}

// ErrDimensionMismatch indicates a point/centroid dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
