package expression

import (
	"io"
	"log/slog"
)

// Option configures an Evaluator.
type Option func(*evaluatorOptions)

type evaluatorOptions struct {
	cacheSize int
	logger    *slog.Logger
}

func defaultEvaluatorOptions() evaluatorOptions {
	return evaluatorOptions{
		cacheSize: DefaultCacheSize,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithCacheSize bounds the number of compiled programs kept in memory.
// Non-positive values select DefaultCacheSize.
func WithCacheSize(n int) Option {
	return func(o *evaluatorOptions) {
		o.cacheSize = n
	}
}

// WithLogger routes evaluator diagnostics to logger: compilations at Debug,
// failures at Warn. Passing nil has no effect.
func WithLogger(logger *slog.Logger) Option {
	return func(o *evaluatorOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
