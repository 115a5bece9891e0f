package interfaces

import (
	"time"

	"myheartbeat/domain"
)

// Registry holds service deadlines. Implemented by registry.Registry.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// Upsert sets the deadline of name to now+ttl, inserting the record on first announcement.
	Upsert(name string, ttl time.Duration, now time.Time)

	// Check returns:
	// 1) OutcomeAlive when the record exists and its deadline is not before now;
	// 2) OutcomeExpired when the deadline has passed (the record is removed);
	// 3) OutcomeUnknown when there is no record for name.
	Check(name string, now time.Time) domain.Outcome

	// Len returns the number of records currently held, stale ones included.
	Len() int
}
