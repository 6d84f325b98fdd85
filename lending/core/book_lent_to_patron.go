package core

import (
	"time"
)

// BookLentToPatronEventType is the event type identifier.
const BookLentToPatronEventType = "BookLentToPatron"

// BookLentToPatron represents when a book was lent to a patron.
type BookLentToPatron struct {
	ISBN       ISBNString
	PatronID   PatronIDString
	OccurredAt OccurredAtTS
}

// BuildBookLentToPatron creates a new BookLentToPatron event.
func BuildBookLentToPatron(isbn ISBNString, patronID PatronIDString, occurredAt time.Time) BookLentToPatron {
	return BookLentToPatron{
		ISBN:       isbn,
		PatronID:   patronID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookLentToPatron) EventType() string {
	return BookLentToPatronEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookLentToPatron) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookLentToPatron) IsErrorEvent() bool {
	return false
}
