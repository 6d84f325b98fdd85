package history

import (
	"context"
	"time"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
	"github.com/AntonStoeckl/lending-catalog-go/lending/shell"
)

// EventStore defines the interface needed by the QueryHandler for event store operations.
type EventStore interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// QueryHandler runs Query -> Unmarshal -> Project against the catalog journal.
type QueryHandler struct {
	eventStore       EventStore
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency and options.
func NewQueryHandler(eventStore EventStore, opts ...Option) (QueryHandler, error) {
	h := QueryHandler{
		eventStore: eventStore,
	}

	for _, opt := range opts {
		if err := opt(&h); err != nil {
			return QueryHandler{}, err
		}
	}

	return h, nil
}

// Handle executes the query.
func (h QueryHandler) Handle(ctx context.Context, query Query) (LendingHistory, error) {
	start := time.Now()
	ctx, span := shell.StartQuerySpan(ctx, h.tracingCollector, queryType)
	shell.LogQueryStart(ctx, h.logger, h.contextualLogger, queryType)

	storableEvents, maxSeq, err := h.eventStore.Query(ctx, BuildEventFilter(query))
	if err != nil {
		h.recordQueryError(ctx, err, time.Since(start), span)
		return LendingHistory{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		h.recordQueryError(ctx, err, time.Since(start), span)
		return LendingHistory{}, err
	}

	result := Project(history, query, maxSeq)
	h.recordQuerySuccess(ctx, time.Since(start), span)

	return result, nil
}

/*** Query Handler Options and helper methods for observability ***/

// Option defines a functional option for configuring QueryHandler.
type Option func(*QueryHandler) error

// WithMetrics sets the metrics collector for the QueryHandler.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(h *QueryHandler) error {
		h.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the QueryHandler.
func WithTracing(collector shell.TracingCollector) Option {
	return func(h *QueryHandler) error {
		h.tracingCollector = collector
		return nil
	}
}

// WithContextualLogging sets the contextual logger for the QueryHandler.
func WithContextualLogging(logger shell.ContextualLogger) Option {
	return func(h *QueryHandler) error {
		h.contextualLogger = logger
		return nil
	}
}

// WithLogging sets the basic logger for the QueryHandler.
func WithLogging(logger shell.Logger) Option {
	return func(h *QueryHandler) error {
		h.logger = logger
		return nil
	}
}

func (h QueryHandler) recordQuerySuccess(ctx context.Context, duration time.Duration, span shell.SpanContext) {
	shell.RecordQueryMetrics(ctx, h.metricsCollector, queryType, shell.StatusSuccess, duration)
	shell.FinishSpan(h.tracingCollector, span, shell.StatusSuccess, duration, nil)
	shell.LogQuerySuccess(ctx, h.logger, h.contextualLogger, queryType, duration)
}

// recordQueryError distinguishes canceled queries from infrastructure errors.
func (h QueryHandler) recordQueryError(ctx context.Context, err error, duration time.Duration, span shell.SpanContext) {
	status := shell.StatusFor(err, nil)

	shell.RecordQueryMetrics(ctx, h.metricsCollector, queryType, status, duration)
	shell.FinishSpan(h.tracingCollector, span, status, duration, err)
	shell.LogQueryError(ctx, h.logger, h.contextualLogger, queryType, err)
}
