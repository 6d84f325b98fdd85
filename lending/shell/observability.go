package shell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
)

const (
	// OperationDurationMetric tracks the duration of catalog operations.
	OperationDurationMetric = "catalog_operation_duration_seconds"

	// OperationCallsMetric counts catalog operations by outcome.
	OperationCallsMetric = "catalog_operation_calls_total"

	// OperationRejectionsMetric counts catalog operations rejected by a business rule.
	OperationRejectionsMetric = "catalog_operation_rejections_total"

	// QueryHandlerDurationMetric tracks query handler execution duration.
	QueryHandlerDurationMetric = "queryhandler_handle_duration_seconds"

	// QueryHandlerCallsMetric counts query handler calls.
	QueryHandlerCallsMetric = "queryhandler_handle_calls_total"

	// StatusSuccess indicates the operation changed the catalog.
	StatusSuccess = "success"

	// StatusRejected indicates a business rule rejected the operation.
	StatusRejected = "rejected"

	// StatusError indicates an infrastructure failure.
	StatusError = "error"

	// StatusCanceled indicates the context was canceled or timed out.
	StatusCanceled = "canceled"

	// StatusConflict indicates the journal detected a concurrent append.
	StatusConflict = "conflict"

	LogMsgOperationStarted   = "catalog operation started"
	LogMsgOperationCompleted = "catalog operation completed"
	LogMsgOperationRejected  = "catalog operation rejected"
	LogMsgOperationFailed    = "catalog operation failed"
	LogMsgQueryStarted       = "query handler started"
	LogMsgQueryCompleted     = "query handler completed"
	LogMsgQueryFailed        = "query handler failed"

	LogAttrOperation  = "operation"
	LogAttrQueryType  = "query_type"
	LogAttrStatus     = "status"
	LogAttrDurationMS = "duration_ms"
	LogAttrEventType  = "event_type"
	LogAttrError      = "error"

	// SpanNamePrefix is prepended to the operation name to form the span name.
	SpanNamePrefix = "catalog."

	// SpanNameQueryHandle is the tracing span name for query handling.
	SpanNameQueryHandle = "queryhandler.handle"
)

// Interface aliases so that the lending packages depend on one place.
type (
	Logger                     = eventstore.Logger
	ContextualLogger           = eventstore.ContextualLogger
	MetricsCollector           = eventstore.MetricsCollector
	ContextualMetricsCollector = eventstore.ContextualMetricsCollector
	TracingCollector           = eventstore.TracingCollector
	SpanContext                = eventstore.SpanContext
)

// StatusFor classifies the error returned by an operation into a metric/span status.
// A non-nil decisionErr marks a business rejection.
func StatusFor(err error, decisionErr error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case decisionErr != nil && errors.Is(err, decisionErr):
		return StatusRejected
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	case errors.Is(err, eventstore.ErrConcurrencyConflict):
		return StatusConflict
	default:
		return StatusError
	}
}

// BuildOperationLabels creates the metric labels for a catalog operation.
func BuildOperationLabels(operation, status string) map[string]string {
	return map[string]string{
		LogAttrOperation: operation,
		LogAttrStatus:    status,
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// RecordOperationMetrics records duration and call count, and the rejection count for rejected operations.
// It prefers the context-aware methods when the collector implements them.
func RecordOperationMetrics(
	ctx context.Context,
	collector MetricsCollector,
	operation string,
	status string,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildOperationLabels(operation, status)

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, OperationDurationMetric, duration, labels)
		contextualCollector.IncrementCounterContext(ctx, OperationCallsMetric, labels)
		if status == StatusRejected {
			contextualCollector.IncrementCounterContext(ctx, OperationRejectionsMetric, labels)
		}

		return
	}

	collector.RecordDuration(OperationDurationMetric, duration, labels)
	collector.IncrementCounter(OperationCallsMetric, labels)
	if status == StatusRejected {
		collector.IncrementCounter(OperationRejectionsMetric, labels)
	}
}

// RecordQueryMetrics records duration and call count of a query handler.
func RecordQueryMetrics(ctx context.Context, collector MetricsCollector, queryType string, status string, duration time.Duration) {
	if collector == nil {
		return
	}

	labels := map[string]string{LogAttrQueryType: queryType, LogAttrStatus: status}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, QueryHandlerDurationMetric, duration, labels)
		contextualCollector.IncrementCounterContext(ctx, QueryHandlerCallsMetric, labels)

		return
	}

	collector.RecordDuration(QueryHandlerDurationMetric, duration, labels)
	collector.IncrementCounter(QueryHandlerCallsMetric, labels)
}

// StartOperationSpan starts the span "catalog.<operation>".
// Returns the original context and a nil span if tracing is disabled.
func StartOperationSpan(
	ctx context.Context,
	tracingCollector TracingCollector,
	operation string,
	attrs map[string]string,
) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	startAttrs := map[string]string{LogAttrOperation: operation}
	for key, value := range attrs {
		startAttrs[key] = value
	}

	return tracingCollector.StartSpan(ctx, SpanNamePrefix+operation, startAttrs)
}

// StartQuerySpan starts the query handler span.
func StartQuerySpan(ctx context.Context, tracingCollector TracingCollector, queryType string) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	return tracingCollector.StartSpan(ctx, SpanNameQueryHandle, map[string]string{LogAttrQueryType: queryType})
}

// FinishSpan completes a span with the outcome of the operation.
func FinishSpan(
	tracingCollector TracingCollector,
	span SpanContext,
	status string,
	duration time.Duration,
	err error,
) {
	if tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: fmt.Sprintf("%.2f", ToMilliseconds(duration)),
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	tracingCollector.FinishSpan(span, status, attrs)
}

// LogOperationStart logs the beginning of a catalog operation at debug level.
func LogOperationStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, operation string, args ...any) {
	args = append([]any{LogAttrOperation, operation}, args...)

	if contextualLogger != nil {
		contextualLogger.DebugContext(ctx, LogMsgOperationStarted, args...)
	} else if logger != nil {
		logger.Debug(LogMsgOperationStarted, args...)
	}
}

// LogOperationSuccess logs a completed catalog operation with the recorded event type.
func LogOperationSuccess(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	operation string,
	eventType string,
	duration time.Duration,
) {
	args := []any{
		LogAttrOperation, operation,
		LogAttrEventType, eventType,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, LogMsgOperationCompleted, args...)
	} else if logger != nil {
		logger.Info(LogMsgOperationCompleted, args...)
	}
}

// LogOperationRejected logs a business rule rejection at warn level.
func LogOperationRejected(ctx context.Context, logger Logger, contextualLogger ContextualLogger, operation string, err error) {
	args := []any{
		LogAttrOperation, operation,
		LogAttrError, err.Error(),
	}

	if contextualLogger != nil {
		contextualLogger.WarnContext(ctx, LogMsgOperationRejected, args...)
	} else if logger != nil {
		logger.Warn(LogMsgOperationRejected, args...)
	}
}

// LogOperationError logs an infrastructure failure at error level.
func LogOperationError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, operation string, err error) {
	args := []any{
		LogAttrOperation, operation,
		LogAttrError, err.Error(),
	}

	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, LogMsgOperationFailed, args...)
	} else if logger != nil {
		logger.Error(LogMsgOperationFailed, args...)
	}
}

// LogQueryStart logs the beginning of a query at debug level.
func LogQueryStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, queryType string) {
	if contextualLogger != nil {
		contextualLogger.DebugContext(ctx, LogMsgQueryStarted, LogAttrQueryType, queryType)
	} else if logger != nil {
		logger.Debug(LogMsgQueryStarted, LogAttrQueryType, queryType)
	}
}

// LogQuerySuccess logs a completed query.
func LogQuerySuccess(ctx context.Context, logger Logger, contextualLogger ContextualLogger, queryType string, duration time.Duration) {
	args := []any{
		LogAttrQueryType, queryType,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, LogMsgQueryCompleted, args...)
	} else if logger != nil {
		logger.Info(LogMsgQueryCompleted, args...)
	}
}

// LogQueryError logs a failed query.
func LogQueryError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, queryType string, err error) {
	args := []any{
		LogAttrQueryType, queryType,
		LogAttrError, err.Error(),
	}

	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, LogMsgQueryFailed, args...)
	} else if logger != nil {
		logger.Error(LogMsgQueryFailed, args...)
	}
}
