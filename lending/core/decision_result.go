package core

// DecisionResult is the outcome of a decide function: the event to record and, for rejections, the error.
//
// Construct it only with SuccessDecision or ErrorDecision.
type DecisionResult struct {
	Outcome string
	Event   DomainEvent
	Err     error
}

const (
	successOutcome = "success"
	errorOutcome   = "error"
)

// SuccessDecision creates a DecisionResult for an accepted command.
func SuccessDecision(event DomainEvent) DecisionResult {
	return DecisionResult{
		Outcome: successOutcome,
		Event:   event,
	}
}

// ErrorDecision creates a DecisionResult for a business rule violation, carrying the failure event.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Event:   event,
		Err:     err,
	}
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
