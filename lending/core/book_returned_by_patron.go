package core

import (
	"time"
)

// BookReturnedByPatronEventType is the event type identifier.
const BookReturnedByPatronEventType = "BookReturnedByPatron"

// BookReturnedByPatron represents when a patron returned a book.
type BookReturnedByPatron struct {
	ISBN       ISBNString
	PatronID   PatronIDString
	OccurredAt OccurredAtTS
}

// BuildBookReturnedByPatron creates a new BookReturnedByPatron event.
func BuildBookReturnedByPatron(isbn ISBNString, patronID PatronIDString, occurredAt time.Time) BookReturnedByPatron {
	return BookReturnedByPatron{
		ISBN:       isbn,
		PatronID:   patronID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookReturnedByPatron) EventType() string {
	return BookReturnedByPatronEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturnedByPatron) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookReturnedByPatron) IsErrorEvent() bool {
	return false
}
