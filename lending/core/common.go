package core

import (
	"time"
)

// ISBNString identifies a book in the catalog.
type ISBNString = string

// PatronIDString identifies a registered patron.
type PatronIDString = string

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
