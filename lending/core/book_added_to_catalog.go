package core

import (
	"time"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents when a book was added to the catalog.
type BookAddedToCatalog struct {
	ISBN       ISBNString
	Title      string
	Author     string
	Category   string
	OccurredAt OccurredAtTS
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(isbn, title, author, category string, occurredAt time.Time) BookAddedToCatalog {
	return BookAddedToCatalog{
		ISBN:       isbn,
		Title:      title,
		Author:     author,
		Category:   category,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookAddedToCatalog) EventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookAddedToCatalog) IsErrorEvent() bool {
	return false
}
