package clustergo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clustering-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses the default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogFit logs the outcome of a whole fit.
func (l *Logger) LogFit(ctx context.Context, k, n, dim int, result *Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"k", k,
			"points", n,
			"dimension", dim,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "fit completed",
		"k", k,
		"points", n,
		"dimension", dim,
		"sse", result.SSE,
		"iterations", result.Iterations,
		"status", result.Status.String(),
		"winning_run", result.Run,
	)
}

// LogRun logs one constituent run of a multi-start fit.
func (l *Logger) LogRun(ctx context.Context, run, iterations int, sse float64, converged bool) {
	l.DebugContext(ctx, "run completed",
		"run", run,
		"iterations", iterations,
		"sse", sse,
		"converged", converged,
	)
}
