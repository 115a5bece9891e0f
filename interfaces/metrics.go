package interfaces

import "myheartbeat/domain"

// Metrics records registry activity. Implemented by adapters/myprometheus.
//
//go:generate moq -stub -out mock/metrics.go -pkg mock . Metrics
type Metrics interface {
	// ObserveAnnounce counts an accepted announcement.
	ObserveAnnounce()
	// ObserveCheck counts a liveness check by outcome.
	ObserveCheck(outcome domain.Outcome)
	// ObserveRejection counts an announcement refused by the credential gate.
	ObserveRejection(decision domain.Decision)
	// SetRecords reports the number of records held by the registry.
	SetRecords(count int)
}
