package myprometheus

import (
	"strings"
	"testing"

	"myheartbeat/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_UsesProvidedRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := NewMetrics(registry)
	m.ObserveAnnounce()
	m.ObserveCheck(domain.OutcomeAlive)
	m.ObserveRejection(domain.DecisionMissing)
	m.SetRecords(3)

	metrics, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(metrics))
	for _, mf := range metrics {
		names = append(names, mf.GetName())
	}

	assert.Contains(t, names, "myheartbeat_announcements_total")
	assert.Contains(t, names, "myheartbeat_checks_total")
	assert.Contains(t, names, "myheartbeat_rejected_announcements_total")
	assert.Contains(t, names, "myheartbeat_records")
}

func TestMetrics_Values(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry()).(*prometheusMetrics)

	m.ObserveAnnounce()
	m.ObserveAnnounce()
	m.ObserveCheck(domain.OutcomeAlive)
	m.ObserveCheck(domain.OutcomeExpired)
	m.ObserveCheck(domain.OutcomeExpired)
	m.ObserveRejection(domain.DecisionMismatch)
	m.SetRecords(7)
	m.SetRecords(5)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.announcements))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.checks.WithLabelValues("alive")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.checks.WithLabelValues("expired")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.checks.WithLabelValues("unknown")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.rejections.WithLabelValues("mismatch")))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.records))
}

func TestMetrics_Exposition(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)
	m.SetRecords(2)

	expected := `
# HELP myheartbeat_records Number of records held by the registry, including expired ones not yet checked
# TYPE myheartbeat_records gauge
myheartbeat_records 2
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "myheartbeat_records"))
}
