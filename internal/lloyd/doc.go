// Package lloyd implements a single k-means run: seeded initialization,
// alternating assignment/update steps, and convergence detection.
//
// Multi-start selection and input validation live in the public clustergo
// package; this package assumes well-formed inputs.
package lloyd
