package memengine

import (
	"context"
	"math"
	"time"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
)

const (
	metricQueryDuration        = "journal_query_duration_seconds"
	metricAppendDuration       = "journal_append_duration_seconds"
	metricEventsQueried        = "journal_events_queried"
	metricEventsAppended       = "journal_events_appended_total"
	metricConcurrencyConflicts = "journal_concurrency_conflicts_total"
	labelOperation             = "operation"
	labelStatus                = "status"
	statusSuccess              = "success"
	statusConflict             = "conflict"
)

func (es *EventStore) logDebug(ctx context.Context, msg string, args ...any) {
	if es.contextualLogger != nil {
		es.contextualLogger.DebugContext(ctx, msg, args...)
	} else if es.logger != nil {
		es.logger.Debug(msg, args...)
	}
}

func (es *EventStore) logInfo(ctx context.Context, msg string, args ...any) {
	if es.contextualLogger != nil {
		es.contextualLogger.InfoContext(ctx, msg, args...)
	} else if es.logger != nil {
		es.logger.Info(msg, args...)
	}
}

func (es *EventStore) logError(ctx context.Context, action string, err error) {
	msg := logMsgOperation + action + " failed"

	if es.contextualLogger != nil {
		es.contextualLogger.ErrorContext(ctx, msg, logAttrError, err.Error())
	} else if es.logger != nil {
		es.logger.Error(msg, logAttrError, err.Error())
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func (es *EventStore) recordQueryMetrics(ctx context.Context, eventCount int, duration time.Duration) {
	if es.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelOperation: logActionQuery, labelStatus: statusSuccess}

	if contextualCollector, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricQueryDuration, duration, labels)
		contextualCollector.RecordValueContext(ctx, metricEventsQueried, float64(eventCount), labels)
		return
	}

	es.metricsCollector.RecordDuration(metricQueryDuration, duration, labels)
	es.metricsCollector.RecordValue(metricEventsQueried, float64(eventCount), labels)
}

func (es *EventStore) recordAppendMetrics(ctx context.Context, eventCount int, duration time.Duration) {
	if es.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelOperation: logActionAppend, labelStatus: statusSuccess}

	if contextualCollector, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricAppendDuration, duration, labels)
		for i := 0; i < eventCount; i++ {
			contextualCollector.IncrementCounterContext(ctx, metricEventsAppended, labels)
		}
		return
	}

	es.metricsCollector.RecordDuration(metricAppendDuration, duration, labels)
	for i := 0; i < eventCount; i++ {
		es.metricsCollector.IncrementCounter(metricEventsAppended, labels)
	}
}

func (es *EventStore) recordConcurrencyConflict(ctx context.Context) {
	if es.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelOperation: logActionAppend, labelStatus: statusConflict}

	if contextualCollector, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricConcurrencyConflicts, labels)
		return
	}

	es.metricsCollector.IncrementCounter(metricConcurrencyConflicts, labels)
}
