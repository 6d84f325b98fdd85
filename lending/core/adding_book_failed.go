package core

import (
	"time"
)

// AddingBookFailedEventType is the event type identifier.
const AddingBookFailedEventType = "AddingBookFailed"

// AddingBookFailed represents when adding a book to the catalog was rejected.
type AddingBookFailed struct {
	ISBN        ISBNString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildAddingBookFailed creates a new AddingBookFailed event.
func BuildAddingBookFailed(isbn ISBNString, failureInfo string, occurredAt time.Time) AddingBookFailed {
	return AddingBookFailed{
		ISBN:        isbn,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e AddingBookFailed) EventType() string {
	return AddingBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AddingBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e AddingBookFailed) IsErrorEvent() bool {
	return true
}
