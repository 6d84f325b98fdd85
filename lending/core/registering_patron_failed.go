package core

import (
	"time"
)

// RegisteringPatronFailedEventType is the event type identifier.
const RegisteringPatronFailedEventType = "RegisteringPatronFailed"

// RegisteringPatronFailed represents when registering a patron was rejected.
type RegisteringPatronFailed struct {
	PatronID    PatronIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildRegisteringPatronFailed creates a new RegisteringPatronFailed event.
func BuildRegisteringPatronFailed(patronID PatronIDString, failureInfo string, occurredAt time.Time) RegisteringPatronFailed {
	return RegisteringPatronFailed{
		PatronID:    patronID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e RegisteringPatronFailed) EventType() string {
	return RegisteringPatronFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e RegisteringPatronFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e RegisteringPatronFailed) IsErrorEvent() bool {
	return true
}
