package service

import (
	"time"

	"myheartbeat/interfaces"
)

// timeProvider implements interfaces.TimeProvider. It returns the current time via the injected now func.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func. Panics on nil now.
//
// In production pass time.Now as is: time.Now().UTC() would drop the monotonic reading
// that keeps deadlines independent of wall-clock adjustments.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	if now == nil {
		panic("service.time_provider.go: now is required")
	}
	return &timeProvider{now: now}
}

// Now returns current time from the injected function.
func (t *timeProvider) Now() time.Time {
	return t.now()
}
