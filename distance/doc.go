// Package distance provides the point-to-point distance calculations used by
// the clustering engine.
//
// The hot-path functions assume equal-length inputs; the engine validates
// dimensionality once at dataset construction, so per-call checks would only
// slow down the inner loop. Checked variants exist for API boundaries that
// accept caller-supplied vectors.
//
// # Usage
//
//	d := distance.SquaredL2(a, b)
//	d, err := distance.SquaredL2Checked(a, b)
package distance
