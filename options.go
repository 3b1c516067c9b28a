package bake

import (
	"log/slog"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bake/metrics"
)

// Option configures a Pool. Use NewPool(n, opts...) to construct a Pool via
// options. Invalid input is reported via ErrInvalidConfig rather than a
// panic.
type Option func(*config) error

// WithLogger sets the logger used for pool lifecycle events (default
// slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithLogger requires a non-nil logger"))
		}
		cfg.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics provider the pool records into (default noop).
func WithMetrics(provider metrics.Provider) Option {
	return func(cfg *config) error {
		if provider == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.metrics = provider
		return nil
	}
}

// WithQueueCapacity pre-sizes the job queue's backing storage (default 16).
// The queue itself remains unbounded.
func WithQueueCapacity(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithQueueCapacity requires n >= 0"))
		}
		cfg.queueCapacity = n
		return nil
	}
}
