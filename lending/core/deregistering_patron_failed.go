package core

import (
	"time"
)

// DeregisteringPatronFailedEventType is the event type identifier.
const DeregisteringPatronFailedEventType = "DeregisteringPatronFailed"

// DeregisteringPatronFailed represents when deregistering a patron was rejected.
type DeregisteringPatronFailed struct {
	PatronID    PatronIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildDeregisteringPatronFailed creates a new DeregisteringPatronFailed event.
func BuildDeregisteringPatronFailed(patronID PatronIDString, failureInfo string, occurredAt time.Time) DeregisteringPatronFailed {
	return DeregisteringPatronFailed{
		PatronID:    patronID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e DeregisteringPatronFailed) EventType() string {
	return DeregisteringPatronFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e DeregisteringPatronFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e DeregisteringPatronFailed) IsErrorEvent() bool {
	return true
}
