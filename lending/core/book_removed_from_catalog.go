package core

import (
	"time"
)

// BookRemovedFromCatalogEventType is the event type identifier.
const BookRemovedFromCatalogEventType = "BookRemovedFromCatalog"

// BookRemovedFromCatalog represents when a book was removed from the catalog.
// A patron holding the book keeps it in their held books.
type BookRemovedFromCatalog struct {
	ISBN       ISBNString
	OccurredAt OccurredAtTS
}

// BuildBookRemovedFromCatalog creates a new BookRemovedFromCatalog event.
func BuildBookRemovedFromCatalog(isbn ISBNString, occurredAt time.Time) BookRemovedFromCatalog {
	return BookRemovedFromCatalog{
		ISBN:       isbn,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookRemovedFromCatalog) EventType() string {
	return BookRemovedFromCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRemovedFromCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookRemovedFromCatalog) IsErrorEvent() bool {
	return false
}
