package core

import (
	"time"
)

// PatronDeregisteredEventType is the event type identifier.
const PatronDeregisteredEventType = "PatronDeregistered"

// PatronDeregistered represents when a patron was deregistered.
// Books the patron held stay on loan.
type PatronDeregistered struct {
	PatronID   PatronIDString
	OccurredAt OccurredAtTS
}

// BuildPatronDeregistered creates a new PatronDeregistered event.
func BuildPatronDeregistered(patronID PatronIDString, occurredAt time.Time) PatronDeregistered {
	return PatronDeregistered{
		PatronID:   patronID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e PatronDeregistered) EventType() string {
	return PatronDeregisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e PatronDeregistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PatronDeregistered) IsErrorEvent() bool {
	return false
}
