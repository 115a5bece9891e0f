package interfaces

import "time"

// TimeProvider supplies the current time for deadline computation and expiry checks.
// Injected so tests can use a fixed clock instead of time.Now().
//
// Constructed in cmd/main as service.NewTimeProvider(time.Now). The returned times must
// keep Go's monotonic clock reading, so implementations must not call UTC() or In().
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns current time.
	Now() time.Time
}
