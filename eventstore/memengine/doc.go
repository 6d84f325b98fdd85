// Package memengine provides an in-process implementation of the eventstore Query/Append contract.
//
// Events live in memory only and are gone when the process ends. The engine still behaves like
// the database-backed engines it stands in for:
//   - Query returns the dynamic event stream selected by a Filter, ordered by sequence number,
//     together with the highest sequence number of that stream
//   - Append is atomic and fails with eventstore.ErrConcurrencyConflict when the stream selected
//     by the same Filter has moved beyond the expected sequence number
//   - Predicates are matched against top-level string fields of the JSON payload
//
// Usage:
//
//	store, _ := memengine.NewEventStore(
//		memengine.WithLogger(slog.Default()),
//		memengine.WithMetrics(collector),
//	)
//
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, newEvent)
package memengine
