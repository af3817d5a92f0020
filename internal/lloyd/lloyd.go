package lloyd

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clustergo/distance"
)

// ConvergenceMode selects how a run decides it is done.
type ConvergenceMode int

const (
	// AssignmentStable stops when no point changed cluster between two
	// consecutive assignment steps. With stable assignment the update step
	// reproduces the same means, so centroids are stationary too.
	AssignmentStable ConvergenceMode = iota

	// CentroidEpsilon stops when every centroid's squared movement in one
	// update step falls below Epsilon. Useful for datasets whose
	// floating-point noise never exactly repeats an assignment.
	CentroidEpsilon
)

// Config holds the per-run parameters. Validation happens in the caller.
type Config struct {
	K             int
	MaxIterations int
	Mode          ConvergenceMode
	Epsilon       float64
	Parallelism   int
}

// Outcome is the raw result of one run.
type Outcome struct {
	Centroids  []float32 // flattened k*dim
	Assignment []int
	Distances  []float32 // per-point squared distance to its centroid
	SSE        float64
	Iterations int
	Converged  bool // false means the iteration cap was hit
}

// minParallelPoints gates the chunked assignment path; below this the
// goroutine overhead outweighs the work.
const minParallelPoints = 4096

// Run executes one full k-means run on row-major data with the given stride.
// The data slice is never mutated. Identical rng state, data order and config
// produce an identical Outcome.
//
// Cancellation is cooperative: ctx is checked once per iteration, before the
// assignment step, and a cancelled run returns no partial result.
func Run(ctx context.Context, data []float32, dim int, cfg Config, rng *rand.Rand) (*Outcome, error) {
	n := len(data) / dim

	centroids := initCentroids(data, dim, cfg.K, rng)

	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = -1
	}
	dists := make([]float32, n)
	sums := make([]float64, cfg.K*dim)
	counts := make([]int, cfg.K)

	var prev []float32
	if cfg.Mode == CentroidEpsilon {
		prev = make([]float32, len(centroids))
	}

	workers := cfg.Parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n < minParallelPoints {
		workers = 1
	}

	var (
		sse       float64
		converged bool
		iters     int
	)

	for iters < cfg.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var changed bool
		changed, sse = assignStep(data, dim, centroids, assignment, dists, workers)
		iters++

		if cfg.Mode == AssignmentStable && !changed {
			// Updating with an unchanged assignment reproduces the same
			// means, so centroids, assignment and SSE already agree.
			converged = true
			break
		}

		if cfg.Mode == CentroidEpsilon {
			copy(prev, centroids)
		}

		updateStep(data, dim, cfg.K, assignment, centroids, sums, counts)

		if cfg.Mode == CentroidEpsilon && maxSquaredShift(prev, centroids, dim) < cfg.Epsilon {
			converged = true
			// Rescore against the final centroids so the reported
			// assignment and SSE match what the caller receives.
			_, sse = assignStep(data, dim, centroids, assignment, dists, workers)
			break
		}
	}

	if !converged {
		// Iteration cap hit right after an update step; one bounded rescore
		// keeps the returned numbers self-consistent.
		_, sse = assignStep(data, dim, centroids, assignment, dists, workers)
	}

	return &Outcome{
		Centroids:  centroids,
		Assignment: assignment,
		Distances:  dists,
		SSE:        sse,
		Iterations: iters,
		Converged:  converged,
	}, nil
}

// initCentroids draws k distinct points as starting centroids, uniformly
// without replacement.
func initCentroids(data []float32, dim, k int, rng *rand.Rand) []float32 {
	centroids := make([]float32, k*dim)
	perm := rng.Perm(len(data) / dim)
	for i := 0; i < k; i++ {
		copy(centroids[i*dim:(i+1)*dim], data[perm[i]*dim:(perm[i]+1)*dim])
	}
	return centroids
}

// assignStep maps every point to its nearest centroid and records the
// per-point minimum squared distance. Returns whether any point changed
// cluster and the summed minimum distances.
func assignStep(data []float32, dim int, centroids []float32, assignment []int, dists []float32, workers int) (bool, float64) {
	n := len(data) / dim
	if workers <= 1 {
		return assignRange(data, dim, centroids, assignment, dists, 0, n)
	}

	chunk := (n + workers - 1) / workers
	changedByChunk := make([]bool, workers)
	sseByChunk := make([]float64, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		w := w
		g.Go(func() error {
			changedByChunk[w], sseByChunk[w] = assignRange(data, dim, centroids, assignment, dists, lo, hi)
			return nil
		})
	}
	_ = g.Wait()

	var changed bool
	var sse float64
	// Chunk-ordered reduction keeps the float sum deterministic.
	for w := 0; w < workers; w++ {
		changed = changed || changedByChunk[w]
		sse += sseByChunk[w]
	}
	return changed, sse
}

// assignRange is the serial kernel for points [lo, hi). Exact distance ties
// go to the lowest-indexed centroid: the strict < comparison never replaces
// an equal-distance winner.
func assignRange(data []float32, dim int, centroids []float32, assignment []int, dists []float32, lo, hi int) (bool, float64) {
	k := len(centroids) / dim

	var changed bool
	var sse float64

	for i := lo; i < hi; i++ {
		vec := data[i*dim : (i+1)*dim]
		best := 0
		minDist := distance.SquaredL2(vec, centroids[:dim])
		for j := 1; j < k; j++ {
			d := distance.SquaredL2(vec, centroids[j*dim:(j+1)*dim])
			if d < minDist {
				minDist = d
				best = j
			}
		}
		if assignment[i] != best {
			assignment[i] = best
			changed = true
		}
		dists[i] = minDist
		sse += float64(minDist)
	}

	return changed, sse
}

// updateStep recomputes each centroid as the coordinate-wise mean of its
// members, accumulating in float64. A cluster that lost all its points keeps
// its previous centroid; reseeding from a random point would trade the
// stable fixed point for oscillation.
func updateStep(data []float32, dim, k int, assignment []int, centroids []float32, sums []float64, counts []int) {
	for i := range sums {
		sums[i] = 0
	}
	for i := range counts {
		counts[i] = 0
	}

	n := len(data) / dim
	for i := 0; i < n; i++ {
		c := assignment[i]
		counts[c]++
		row := data[i*dim : (i+1)*dim]
		acc := sums[c*dim : (c+1)*dim]
		for d := 0; d < dim; d++ {
			acc[d] += float64(row[d])
		}
	}

	for j := 0; j < k; j++ {
		if counts[j] == 0 {
			continue
		}
		inv := 1 / float64(counts[j])
		for d := 0; d < dim; d++ {
			centroids[j*dim+d] = float32(sums[j*dim+d] * inv)
		}
	}
}

// maxSquaredShift returns the largest squared movement of any centroid
// between two centroid sets.
func maxSquaredShift(prev, cur []float32, dim int) float64 {
	k := len(cur) / dim
	var maxShift float64
	for j := 0; j < k; j++ {
		d := float64(distance.SquaredL2(prev[j*dim:(j+1)*dim], cur[j*dim:(j+1)*dim]))
		if d > maxShift {
			maxShift = d
		}
	}
	return maxShift
}
