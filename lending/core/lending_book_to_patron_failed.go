package core

import (
	"time"
)

// LendingBookToPatronFailedEventType is the event type identifier.
const LendingBookToPatronFailedEventType = "LendingBookToPatronFailed"

// LendingBookToPatronFailed represents when lending a book to a patron was rejected.
type LendingBookToPatronFailed struct {
	ISBN        ISBNString
	PatronID    PatronIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildLendingBookToPatronFailed creates a new LendingBookToPatronFailed event.
func BuildLendingBookToPatronFailed(isbn ISBNString, patronID PatronIDString, failureInfo string, occurredAt time.Time) LendingBookToPatronFailed {
	return LendingBookToPatronFailed{
		ISBN:        isbn,
		PatronID:    patronID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e LendingBookToPatronFailed) EventType() string {
	return LendingBookToPatronFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LendingBookToPatronFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e LendingBookToPatronFailed) IsErrorEvent() bool {
	return true
}
