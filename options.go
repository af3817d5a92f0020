package clustergo

import (
	"log/slog"
	"runtime"
)

// ConvergenceMode selects how a run decides it is done.
type ConvergenceMode int

const (
	// ConvergeAssignment stops a run when no point changes cluster between
	// two consecutive assignment steps (default).
	ConvergeAssignment ConvergenceMode = iota

	// ConvergeCentroidEpsilon stops a run when every centroid's squared
	// movement in one update falls below the configured epsilon. Intended
	// for datasets whose floating-point noise never exactly repeats an
	// assignment.
	ConvergeCentroidEpsilon
)

type options struct {
	maxIterations int
	numStarts     int
	seed          int64
	mode          ConvergenceMode
	epsilon       float64
	parallelism   int
	logger        *Logger
	metrics       MetricsCollector
}

// Option configures KMeans behavior.
type Option func(*options)

// WithMaxIterations caps the assignment/update iterations of each run.
// Hitting the cap is not an error; the result reports StatusMaxIterations.
// Values below 1 are clamped to 1. Default: 100.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.maxIterations = n
	}
}

// WithNumStarts sets how many independently initialized runs compete; the
// lowest-SSE result wins. Values below 1 are clamped to 1. Default: 1.
func WithNumStarts(s int) Option {
	return func(o *options) {
		if s < 1 {
			s = 1
		}
		o.numStarts = s
	}
}

// WithSeed fixes the top-level random seed. Per-run seeds derive from it
// deterministically, so a whole multi-start fit is reproducible. Default: 1.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithConvergenceMode selects the convergence policy.
// Default: ConvergeAssignment.
func WithConvergenceMode(mode ConvergenceMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithEpsilon sets the squared-movement threshold used by
// ConvergeCentroidEpsilon; ignored in assignment mode. Default: 1e-6.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		o.epsilon = eps
	}
}

// WithParallelism bounds the worker goroutines used for parallel starts and
// for the chunked assignment step. Values below 1 fall back to GOMAXPROCS.
func WithParallelism(workers int) Option {
	return func(o *options) {
		if workers < 1 {
			workers = runtime.GOMAXPROCS(0)
		}
		o.parallelism = workers
	}
}

// WithLogger configures structured logging for fits.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for fit operations.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxIterations: 100,
		numStarts:     1,
		seed:          1,
		mode:          ConvergeAssignment,
		epsilon:       1e-6,
		parallelism:   runtime.GOMAXPROCS(0),
		logger:        NoopLogger(),
		metrics:       NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
