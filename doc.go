// Package clustergo implements k-means clustering from scratch: seeded
// initialization, Lloyd iteration with deterministic tie-breaking, assignment-
// or centroid-based convergence detection, and best-of-N multi-start selection.
//
// The engine is colorspace- and format-agnostic: every entity is an
// N-dimensional point. Loading data, plotting, and image decoding belong to
// the caller; the engine consumes a Dataset and produces a Result.
//
// # Quick Start
//
//	ds, _ := clustergo.FromVectors(vectors)
//	km, _ := clustergo.New(3, clustergo.WithSeed(42), clustergo.WithNumStarts(8))
//	result, err := km.Fit(ctx, ds)
//
// # Reproducibility
//
// All randomness flows from the configured seed. Identical seed, dataset
// order, and configuration produce an identical Result, including the
// multi-start winner.
//
// # Local Optima
//
// k-means converges to a local optimum that depends on initialization.
// Multi-start (WithNumStarts) mitigates this by keeping the lowest-SSE run;
// it does not guarantee the global minimum.
package clustergo
