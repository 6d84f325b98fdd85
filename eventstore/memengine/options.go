package memengine

import (
	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
)

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithLogger sets the logger for the EventStore.
//
// Debug level: every query and append with its duration
// Info level: concurrency conflicts
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		es.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger. It takes precedence over WithLogger.
func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(es *EventStore) error {
		es.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the EventStore.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) error {
		es.metricsCollector = collector
		return nil
	}
}
