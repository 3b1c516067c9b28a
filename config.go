package bake

import (
	"log/slog"

	"github.com/ygrebnov/bake/metrics"
)

// config holds Pool configuration.
type config struct {
	// logger receives structured pool lifecycle events.
	// Default: slog.Default().
	logger *slog.Logger

	// metrics provides the instruments the pool records into.
	// Default: metrics.NewNoopProvider() (measurements discarded).
	metrics metrics.Provider

	// queueCapacity is the initial capacity of the job queue. The queue
	// grows without bound; this only pre-sizes the backing storage.
	// Default: 16.
	queueCapacity int
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		logger:        slog.Default(),
		metrics:       metrics.NewNoopProvider(),
		queueCapacity: 16,
	}
}
