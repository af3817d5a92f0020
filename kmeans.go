package clustergo

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clustergo/internal/lloyd"
)

// KMeans is a configured k-means clusterer. It is immutable after New and
// safe for concurrent use; every Fit owns its own centroids and scratch
// state, while the dataset is shared read-only.
type KMeans struct {
	k    int
	opts options
}

// New creates a clusterer targeting k clusters.
func New(k int, optFns ...Option) (*KMeans, error) {
	if k < 1 {
		return nil, &ErrInvalidClusterCount{K: k}
	}
	return &KMeans{k: k, opts: applyOptions(optFns)}, nil
}

// K returns the configured cluster count.
func (km *KMeans) K() int { return km.k }

// Fit clusters the dataset and returns the best result across the configured
// number of starts: lowest SSE, ties broken by the lowest start index.
//
// Structural errors (empty dataset, k > N) abort the whole fit before any
// iteration. A run stopped by the iteration cap is not an error; it still
// competes, and the winning result carries StatusMaxIterations.
func (km *KMeans) Fit(ctx context.Context, ds *Dataset) (*Result, error) {
	begin := time.Now()
	result, err := km.fit(ctx, ds)
	km.opts.metrics.RecordFit(time.Since(begin), err)
	km.opts.logger.LogFit(ctx, km.k, ds.Len(), ds.Dim(), result, err)
	return result, err
}

func (km *KMeans) fit(ctx context.Context, ds *Dataset) (*Result, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	n := ds.Len()
	if km.k > n {
		return nil, &ErrInvalidClusterCount{K: km.k, N: n}
	}

	mode := lloyd.AssignmentStable
	if km.opts.mode == ConvergeCentroidEpsilon {
		mode = lloyd.CentroidEpsilon
	}

	cfg := lloyd.Config{
		K:             km.k,
		MaxIterations: km.opts.maxIterations,
		Mode:          mode,
		Epsilon:       km.opts.epsilon,
		Parallelism:   km.opts.parallelism,
	}

	starts := km.opts.numStarts
	if starts > 1 {
		// Starts run in parallel; keep each run's assignment step serial so
		// the two levels do not oversubscribe the CPU.
		cfg.Parallelism = 1
	}

	// Per-start seeds all derive from the top-level seed.
	seedSrc := rand.New(rand.NewSource(km.opts.seed))
	seeds := make([]int64, starts)
	for i := range seeds {
		seeds[i] = seedSrc.Int63()
	}

	outcomes := make([]*lloyd.Outcome, starts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(km.opts.parallelism)

	for i := 0; i < starts; i++ {
		i := i
		g.Go(func() error {
			runBegin := time.Now()
			out, err := lloyd.Run(gctx, ds.data, ds.dim, cfg, rand.New(rand.NewSource(seeds[i])))
			if err != nil {
				return err
			}
			outcomes[i] = out
			km.opts.metrics.RecordRun(out.Iterations, out.SSE, time.Since(runBegin))
			km.opts.logger.LogRun(gctx, i, out.Iterations, out.SSE, out.Converged)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Selection is by start index, not completion order, so the winner is
	// deterministic even though runs finish in any order.
	best := 0
	for i := 1; i < starts; i++ {
		if outcomes[i].SSE < outcomes[best].SSE {
			best = i
		}
	}

	out := outcomes[best]
	status := StatusConverged
	if !out.Converged {
		status = StatusMaxIterations
	}

	return &Result{
		dim:        ds.dim,
		centroids:  out.Centroids,
		Assignment: out.Assignment,
		Distances:  out.Distances,
		SSE:        out.SSE,
		Status:     status,
		Iterations: out.Iterations,
		Run:        best,
	}, nil
}
