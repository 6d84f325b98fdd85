// Package eventstore provides the abstractions of the lending journal: a log of domain events
// that can be queried as "dynamic event streams" and appended to with optimistic concurrency.
//
// This package defines the types shared by the engines and their clients: filters, storable
// events, observability interfaces and common error definitions. It does not store anything
// itself; see the memengine package for the in-process implementation.
//
// A dynamic event stream is whatever the filter selects:
//   - Event types
//   - Predicates on top-level JSON payload fields
//
// Common usage pattern:
//
//	filter := BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(
//			core.BookLentToPatronEventType,
//			core.BookReturnedByPatronEventType).
//		AndAnyPredicateOf(P("ISBN", isbn)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	if err != nil {
//		// handle error
//	}
//
//	newEvent, _ := eventstore.BuildStorableEvent(eventType, time.Now(), payload, metadata)
//	err = store.Append(ctx, filter, maxSeq, newEvent)
package eventstore
