// Package eval computes clustering quality analyses from a fit result:
// recomputed SSE, silhouette coefficients, and elbow-method curves.
//
// These are deliberately external to the engine. They consume only the
// dataset plus the Result's exposed assignment and centroids, so callers can
// swap in their own metrics without touching the core.
package eval
