// Package testutil provides testing utilities for clustergo.
//
// This package is intended for use in tests and benchmarks only. It provides
// a seeded thread-safe RNG and a generator for synthetic datasets with known
// cluster structure.
//
//	rng := testutil.NewRNG(seed)
//	data, labels := testutil.ClusteredData(rng, 3, 100, 2, 0.05)
package testutil
