package eventstore

import (
	"errors"
)

var (
	// ErrConcurrencyConflict is returned when the dynamic event stream changed between Query and Append.
	ErrConcurrencyConflict = errors.New("concurrency error, the event stream has moved on")

	// ErrQueryingEventsFailed is returned when the engine can't answer a query.
	ErrQueryingEventsFailed = errors.New("querying events failed")

	// ErrAppendingEventFailed is returned when the engine can't append the given events.
	ErrAppendingEventFailed = errors.New("appending the event failed")

	// ErrNoEventsSupplied is returned when Append is called without events.
	ErrNoEventsSupplied = errors.New("no events supplied to append")
)

// MaxSequenceNumberUint is a type alias for uint, representing the maximum sequence number for a "dynamic event stream".
type MaxSequenceNumberUint = uint
