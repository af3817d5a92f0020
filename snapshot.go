package clustergo

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// resultSnapshot is the gob wire form of Result.
type resultSnapshot struct {
	Dim        int
	Centroids  []float32
	Assignment []int
	Distances  []float32
	SSE        float64
	Status     int
	Iterations int
	Run        int
}

// Save writes the result as a zstd-compressed gob stream. The snapshot
// carries the full model (centroids) plus the assignment bookkeeping, so a
// loaded result supports Predict and Members without refitting.
func (r *Result) Save(w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create compressor: %w", err)
	}

	snap := resultSnapshot{
		Dim:        r.dim,
		Centroids:  r.centroids,
		Assignment: r.Assignment,
		Distances:  r.Distances,
		SSE:        r.SSE,
		Status:     int(r.Status),
		Iterations: r.Iterations,
		Run:        r.Run,
	}
	if err := gob.NewEncoder(zw).Encode(snap); err != nil {
		zw.Close()
		return fmt.Errorf("encode result: %w", err)
	}
	return zw.Close()
}

// LoadResult reads a snapshot written by Save.
func LoadResult(r io.Reader) (*Result, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create decompressor: %w", err)
	}
	defer zr.Close()

	var snap resultSnapshot
	if err := gob.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	if snap.Dim < 1 || len(snap.Centroids) == 0 || len(snap.Centroids)%snap.Dim != 0 {
		return nil, fmt.Errorf("corrupt snapshot: %d centroid values for dimension %d", len(snap.Centroids), snap.Dim)
	}

	return &Result{
		dim:        snap.Dim,
		centroids:  snap.Centroids,
		Assignment: snap.Assignment,
		Distances:  snap.Distances,
		SSE:        snap.SSE,
		Status:     TerminationStatus(snap.Status),
		Iterations: snap.Iterations,
		Run:        snap.Run,
	}, nil
}
