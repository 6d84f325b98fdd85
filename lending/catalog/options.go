package catalog

import (
	"time"

	"github.com/AntonStoeckl/lending-catalog-go/lending/shell"
)

// Option configures a Catalog.
type Option func(*Catalog)

// WithJournal records every decided event, accepted or rejected, in the given journal.
// Without a journal the catalog tables are the only state.
func WithJournal(journal Journal) Option {
	return func(c *Catalog) {
		c.journal = journal
	}
}

// WithClock sets the time source for event timestamps. Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(c *Catalog) {
		c.clock = clock
	}
}

// WithLogger sets the logger.
//
// Debug level: operation start
// Info level: completed operations
// Warn level: business rule rejections
// Error level: journal and mapping failures
func WithLogger(logger shell.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithContextualLogger sets a context-aware logger. It takes precedence over WithLogger.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(c *Catalog) {
		c.contextualLogger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(c *Catalog) {
		c.metricsCollector = collector
	}
}

// WithTracing sets the tracing collector. Every operation gets a span named "catalog.<operation>".
func WithTracing(collector shell.TracingCollector) Option {
	return func(c *Catalog) {
		c.tracingCollector = collector
	}
}
