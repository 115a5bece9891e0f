// Package registry keeps announced services ordered by name and answers liveness checks.
//
// Expired records are not swept in the background: a record is removed only when
// Check observes that its deadline has passed.
package registry

import (
	"slices"
	"strings"
	"sync"
	"time"

	"myheartbeat/domain"
)

// Registry is an in-memory ordered map of service name to deadline, safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	records []domain.ServiceRecord
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Upsert sets the deadline of name to now+ttl, creating the record if needed.
// A negative ttl is treated as zero.
func (r *Registry) Upsert(name string, ttl time.Duration, now time.Time) {
	if ttl < 0 {
		ttl = 0
	}
	deadline := now.Add(ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = Upsert(r.records, name, deadline)
}

// Check reports whether name is alive at now. An expired record is removed.
func (r *Registry) Check(name string, now time.Time) domain.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	outcome, records := Check(r.records, name, now)
	r.records = records
	return outcome
}

// Len returns the number of records held, including expired ones not yet checked.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Records returns a copy of all records in name order.
func (r *Registry) Records() []domain.ServiceRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.records)
}

// Upsert refreshes or inserts name in records, which must be sorted by name, and returns the updated slice.
func Upsert(records []domain.ServiceRecord, name string, deadline time.Time) []domain.ServiceRecord {
	i, found := search(records, name)
	if found {
		records[i].Deadline = deadline
		return records
	}
	return slices.Insert(records, i, domain.ServiceRecord{Name: name, Deadline: deadline})
}

// Check looks name up in records, which must be sorted by name. A record whose
// deadline is before now is deleted and reported as expired; a deadline equal to
// now is still alive.
func Check(records []domain.ServiceRecord, name string, now time.Time) (domain.Outcome, []domain.ServiceRecord) {
	i, found := search(records, name)
	if !found {
		return domain.OutcomeUnknown, records
	}
	if records[i].Deadline.Before(now) {
		return domain.OutcomeExpired, slices.Delete(records, i, i+1)
	}
	return domain.OutcomeAlive, records
}

func search(records []domain.ServiceRecord, name string) (int, bool) {
	return slices.BinarySearchFunc(records, name, func(rec domain.ServiceRecord, target string) int {
		return strings.Compare(rec.Name, target)
	})
}
