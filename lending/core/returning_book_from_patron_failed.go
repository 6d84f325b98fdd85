package core

import (
	"time"
)

// ReturningBookFromPatronFailedEventType is the event type identifier.
const ReturningBookFromPatronFailedEventType = "ReturningBookFromPatronFailed"

// ReturningBookFromPatronFailed represents when returning a book from a patron was rejected.
type ReturningBookFromPatronFailed struct {
	ISBN        ISBNString
	PatronID    PatronIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildReturningBookFromPatronFailed creates a new ReturningBookFromPatronFailed event.
func BuildReturningBookFromPatronFailed(isbn ISBNString, patronID PatronIDString, failureInfo string, occurredAt time.Time) ReturningBookFromPatronFailed {
	return ReturningBookFromPatronFailed{
		ISBN:        isbn,
		PatronID:    patronID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e ReturningBookFromPatronFailed) EventType() string {
	return ReturningBookFromPatronFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningBookFromPatronFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e ReturningBookFromPatronFailed) IsErrorEvent() bool {
	return true
}
