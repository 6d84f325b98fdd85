package core

import (
	"time"
)

// RemovingBookFailedEventType is the event type identifier.
const RemovingBookFailedEventType = "RemovingBookFailed"

// RemovingBookFailed represents when removing a book from the catalog was rejected.
type RemovingBookFailed struct {
	ISBN        ISBNString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildRemovingBookFailed creates a new RemovingBookFailed event.
func BuildRemovingBookFailed(isbn ISBNString, failureInfo string, occurredAt time.Time) RemovingBookFailed {
	return RemovingBookFailed{
		ISBN:        isbn,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e RemovingBookFailed) EventType() string {
	return RemovingBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e RemovingBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e RemovingBookFailed) IsErrorEvent() bool {
	return true
}
