package history

import (
	"time"

	"github.com/AntonStoeckl/lending-catalog-go/lending/core"
)

// Lending is one cycle of a book lent to a patron.
type Lending struct {
	ISBN       core.ISBNString
	PatronID   core.PatronIDString
	LentAt     time.Time
	ReturnedAt time.Time
	Returned   bool
}

// IsOpen reports whether the book has not come back yet.
func (l Lending) IsOpen() bool {
	return !l.Returned
}

// LendingHistory is the query result. Lendings are ordered by LentAt, oldest first.
type LendingHistory struct {
	Lendings       []Lending
	OpenCount      int
	FinishedCount  int
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event used to build the projection.
func (r LendingHistory) GetSequenceNumber() uint {
	return r.SequenceNumber
}
