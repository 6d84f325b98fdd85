package core

import (
	"time"
)

// PatronRegisteredEventType is the event type identifier.
const PatronRegisteredEventType = "PatronRegistered"

// PatronRegistered represents when a patron was registered.
type PatronRegistered struct {
	PatronID   PatronIDString
	Name       string
	OccurredAt OccurredAtTS
}

// BuildPatronRegistered creates a new PatronRegistered event.
func BuildPatronRegistered(patronID PatronIDString, name string, occurredAt time.Time) PatronRegistered {
	return PatronRegistered{
		PatronID:   patronID,
		Name:       name,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e PatronRegistered) EventType() string {
	return PatronRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e PatronRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PatronRegistered) IsErrorEvent() bool {
	return false
}
