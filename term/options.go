package term

import (
	"io"
	"log/slog"
)

// Option configures a Graph.
type Option func(*graphOptions)

type graphOptions struct {
	logger   *slog.Logger
	capacity int
}

func defaultGraphOptions() graphOptions {
	return graphOptions{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		capacity: 16,
	}
}

// WithLogger routes graph diagnostics (Debug: node interned / reused) to logger.
// Passing nil has no effect.
func WithLogger(logger *slog.Logger) Option {
	return func(o *graphOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCapacity pre-sizes the arena for n nodes. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *graphOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}
