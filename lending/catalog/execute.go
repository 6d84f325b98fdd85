package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
	"github.com/AntonStoeckl/lending-catalog-go/lending/core"
	"github.com/AntonStoeckl/lending-catalog-go/lending/shell"
)

const (
	logAttrISBN     = "isbn"
	logAttrPatronID = "patron_id"
)

type operation struct {
	name     string
	isbn     string
	patronID string
}

func (op operation) spanAttrs() map[string]string {
	attrs := make(map[string]string)
	if op.isbn != "" {
		attrs[logAttrISBN] = op.isbn
	}

	if op.patronID != "" {
		attrs[logAttrPatronID] = op.patronID
	}

	return attrs
}

func (op operation) logArgs() []any {
	args := make([]any, 0, 4)
	for key, value := range op.spanAttrs() {
		args = append(args, key, value)
	}

	return args
}

type outcome struct {
	event       core.DomainEvent
	err         error
	decisionErr error
}

// execute runs one mutating operation: decide over the current tables, record the event in the journal,
// then apply the change unless the decision was a rejection or the journal failed.
func (c *Catalog) execute(
	ctx context.Context,
	op operation,
	decide func(now time.Time) core.DecisionResult,
	apply func(),
) error {

	start := time.Now()
	ctx, span := shell.StartOperationSpan(ctx, c.tracingCollector, op.name, op.spanAttrs())
	shell.LogOperationStart(ctx, c.logger, c.contextualLogger, op.name, op.logArgs()...)

	result := c.decideRecordApply(ctx, op, decide, apply)
	c.observeOutcome(ctx, op.name, span, start, result)

	return result.err
}

func (c *Catalog) decideRecordApply(
	ctx context.Context,
	op operation,
	decide func(now time.Time) core.DecisionResult,
	apply func(),
) outcome {

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return outcome{err: err}
	}

	result := decide(c.clock())

	if err := c.record(ctx, op, result.Event); err != nil {
		return outcome{event: result.Event, err: err}
	}

	if err := result.HasError(); err != nil {
		return outcome{event: result.Event, err: err, decisionErr: err}
	}

	apply()

	return outcome{event: result.Event}
}

// record must be called with the lock held.
func (c *Catalog) record(ctx context.Context, op operation, event core.DomainEvent) error {
	if c.journal == nil {
		return nil
	}

	filter := BuildJournalFilter(op.isbn, op.patronID)

	_, maxSequenceNumber, err := c.journal.Query(ctx, filter)
	if err != nil {
		return err
	}

	storableEvent, err := shell.StorableEventFrom(event, shell.BuildInitialEventMetadata())
	if err != nil {
		return err
	}

	return c.journal.Append(ctx, filter, maxSequenceNumber, storableEvent)
}

// BuildJournalFilter selects the catalog changes that concern the given book or patron.
// Failure events are journaled but never selected, since they do not change the tables.
func BuildJournalFilter(isbn, patronID string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookRemovedFromCatalogEventType,
			core.PatronRegisteredEventType,
			core.PatronDeregisteredEventType,
			core.BookLentToPatronEventType,
			core.BookReturnedByPatronEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("ISBN", isbn),
			eventstore.P("PatronID", patronID),
		).
		Finalize()
}

func (c *Catalog) observeOutcome(ctx context.Context, operationName string, span shell.SpanContext, start time.Time, result outcome) {
	duration := time.Since(start)
	status := shell.StatusFor(result.err, result.decisionErr)

	switch status {
	case shell.StatusSuccess:
		shell.LogOperationSuccess(ctx, c.logger, c.contextualLogger, operationName, result.event.EventType(), duration)
	case shell.StatusRejected:
		shell.LogOperationRejected(ctx, c.logger, c.contextualLogger, operationName, result.err)
	default:
		shell.LogOperationError(ctx, c.logger, c.contextualLogger, operationName, result.err)
	}

	shell.RecordOperationMetrics(ctx, c.metricsCollector, operationName, status, duration)
	shell.FinishSpan(c.tracingCollector, span, status, duration, result.err)
}

// observeRead finishes a read-only operation. Successful reads are logged at debug level only.
func (c *Catalog) observeRead(ctx context.Context, operationName string, span shell.SpanContext, start time.Time, err error) {
	duration := time.Since(start)
	status := shell.StatusFor(err, nil)

	switch {
	case err == nil:
		c.logDebug(ctx, shell.LogMsgOperationCompleted,
			shell.LogAttrOperation, operationName,
			shell.LogAttrDurationMS, shell.ToMilliseconds(duration))
	case errors.Is(err, ErrPatronNotFound):
		status = shell.StatusRejected
		shell.LogOperationRejected(ctx, c.logger, c.contextualLogger, operationName, err)
	default:
		shell.LogOperationError(ctx, c.logger, c.contextualLogger, operationName, err)
	}

	shell.RecordOperationMetrics(ctx, c.metricsCollector, operationName, status, duration)
	shell.FinishSpan(c.tracingCollector, span, status, duration, err)
}

func (c *Catalog) logDebug(ctx context.Context, msg string, args ...any) {
	if c.contextualLogger != nil {
		c.contextualLogger.DebugContext(ctx, msg, args...)
	} else if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
