package domain

import "time"

// ServiceRecord is one announced service held by the registry.
type ServiceRecord struct {
	Name     string    // unique key, records are kept sorted by it
	Deadline time.Time // service is alive while now <= Deadline
}

// Outcome is the result of a liveness check.
type Outcome int

const (
	// OutcomeUnknown means no record exists for the name.
	OutcomeUnknown Outcome = iota
	// OutcomeAlive means the record exists and its deadline has not passed.
	OutcomeAlive
	// OutcomeExpired means the record existed but its deadline had passed; it has been removed.
	OutcomeExpired
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAlive:
		return "alive"
	case OutcomeExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Decision is the result of comparing a presented write token with the configured one.
type Decision int

const (
	// DecisionAuthorized means the presented token equals the configured one.
	DecisionAuthorized Decision = iota
	// DecisionMissing means no token was presented.
	DecisionMissing
	// DecisionMismatch means a token was presented but does not match.
	DecisionMismatch
)

func (d Decision) String() string {
	switch d {
	case DecisionAuthorized:
		return "authorized"
	case DecisionMissing:
		return "missing"
	default:
		return "mismatch"
	}
}
