package memengine

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
)

const (
	logMsgQueryCompleted      = "query completed"
	logMsgEventsAppended      = "events appended"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgOperation           = "journal operation: "
	logAttrError              = "error"
	logAttrEventCount         = "event_count"
	logAttrDurationMS         = "duration_ms"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
	logActionQuery            = "query"
	logActionAppend           = "append"
)

type record struct {
	sequenceNumber eventstore.MaxSequenceNumberUint
	event          eventstore.StorableEvent
}

// EventStore keeps appended events in memory, ordered by a global sequence number starting at 1.
// It is safe for concurrent use.
type EventStore struct {
	mu      sync.RWMutex
	records []record

	logger           eventstore.Logger
	contextualLogger eventstore.ContextualLogger
	metricsCollector eventstore.MetricsCollector
}

// NewEventStore creates an empty EventStore with optional configuration.
func NewEventStore(options ...Option) (*EventStore, error) {
	es := &EventStore{
		records: make([]record, 0),
	}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Query returns all events matching the filter, ordered by sequence number,
// and the MaxSequenceNumberUint of this "dynamic event stream" at the time of the query (0 if it is empty).
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	start := time.Now()

	if err := ctx.Err(); err != nil {
		es.logError(ctx, logActionQuery, err)
		return eventstore.StorableEvents{}, 0, errors.Join(eventstore.ErrQueryingEventsFailed, err)
	}

	es.mu.RLock()
	eventStream, maxSequenceNumber := es.selectStream(filter)
	es.mu.RUnlock()

	duration := time.Since(start)
	es.logDebug(ctx, logMsgOperation+logMsgQueryCompleted,
		logAttrEventCount, len(eventStream),
		logAttrDurationMS, toMilliseconds(duration))
	es.recordQueryMetrics(ctx, len(eventStream), duration)

	return eventStream, maxSequenceNumber, nil
}

// Append appends the events atomically if the stream selected by filter still ends at expectedMaxSequenceNumber.
//
// The filter should be the one used for the Query that preceded the business decision.
// Otherwise, it fails with eventstore.ErrConcurrencyConflict and appends nothing.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	storableEvents ...eventstore.StorableEvent,
) error {

	start := time.Now()

	if len(storableEvents) == 0 {
		return eventstore.ErrNoEventsSupplied
	}

	if err := ctx.Err(); err != nil {
		es.logError(ctx, logActionAppend, err)
		return errors.Join(eventstore.ErrAppendingEventFailed, err)
	}

	es.mu.Lock()
	_, actualMaxSequenceNumber := es.selectStream(filter)
	if actualMaxSequenceNumber != expectedMaxSequenceNumber {
		es.mu.Unlock()

		es.logInfo(ctx, logMsgOperation+logMsgConcurrencyConflict,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
			logAttrActualSequence, actualMaxSequenceNumber)
		es.recordConcurrencyConflict(ctx)

		return eventstore.ErrConcurrencyConflict
	}

	nextSequenceNumber := es.lastSequenceNumber()
	for _, event := range storableEvents {
		nextSequenceNumber++
		es.records = append(es.records, record{
			sequenceNumber: nextSequenceNumber,
			event:          cloneEvent(event),
		})
	}
	es.mu.Unlock()

	duration := time.Since(start)
	es.logDebug(ctx, logMsgOperation+logMsgEventsAppended,
		logAttrEventCount, len(storableEvents),
		logAttrDurationMS, toMilliseconds(duration))
	es.recordAppendMetrics(ctx, len(storableEvents), duration)

	return nil
}

// selectStream must be called with at least the read lock held.
func (es *EventStore) selectStream(filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint) {
	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for _, r := range es.records {
		if !matchesFilter(filter, r.event) {
			continue
		}

		eventStream = append(eventStream, cloneEvent(r.event))
		maxSequenceNumber = r.sequenceNumber
	}

	return eventStream, maxSequenceNumber
}

func (es *EventStore) lastSequenceNumber() eventstore.MaxSequenceNumberUint {
	if len(es.records) == 0 {
		return 0
	}

	return es.records[len(es.records)-1].sequenceNumber
}

func matchesFilter(filter eventstore.Filter, event eventstore.StorableEvent) bool {
	if len(filter.Items()) == 0 {
		return true
	}

	for _, item := range filter.Items() {
		if matchesItem(item, event) {
			return true
		}
	}

	return false
}

func matchesItem(item eventstore.FilterItem, event eventstore.StorableEvent) bool {
	if len(item.EventTypes()) > 0 && !slices.Contains(item.EventTypes(), event.EventType) {
		return false
	}

	predicates := item.Predicates()
	if len(predicates) == 0 {
		return true
	}

	matches := func(p eventstore.FilterPredicate) bool {
		return matchesPredicate(p, event.PayloadJSON)
	}

	if item.AllPredicatesMustMatch() {
		for _, p := range predicates {
			if !matches(p) {
				return false
			}
		}

		return true
	}

	return slices.ContainsFunc(predicates, matches)
}

func matchesPredicate(predicate eventstore.FilterPredicate, payloadJSON []byte) bool {
	field := jsoniter.ConfigFastest.Get(payloadJSON, predicate.Key())
	if field.ValueType() != jsoniter.StringValue {
		return false
	}

	return field.ToString() == predicate.Val()
}

func cloneEvent(event eventstore.StorableEvent) eventstore.StorableEvent {
	event.PayloadJSON = bytes.Clone(event.PayloadJSON)
	event.MetadataJSON = bytes.Clone(event.MetadataJSON)

	return event
}
