package myprometheus

import (
	"myheartbeat/domain"
	"myheartbeat/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	announcements prometheus.Counter
	checks        *prometheus.CounterVec
	rejections    *prometheus.CounterVec
	records       prometheus.Gauge
}

// NewMetrics creates prometheus implementation of interfaces.Metrics and registers
// its collectors with registerer (prometheus.DefaultRegisterer when nil).
func NewMetrics(registerer prometheus.Registerer) interfaces.Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &prometheusMetrics{
		announcements: factory.NewCounter(prometheus.CounterOpts{
			Name: "myheartbeat_announcements_total",
			Help: "Total number of accepted announcements",
		}),
		checks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myheartbeat_checks_total",
				Help: "Total number of liveness checks by outcome",
			},
			[]string{"outcome"},
		),
		rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myheartbeat_rejected_announcements_total",
				Help: "Total number of announcements refused because of the write token",
			},
			[]string{"reason"},
		),
		records: factory.NewGauge(prometheus.GaugeOpts{
			Name: "myheartbeat_records",
			Help: "Number of records held by the registry, including expired ones not yet checked",
		}),
	}
}

func (p *prometheusMetrics) ObserveAnnounce() {
	p.announcements.Inc()
}

func (p *prometheusMetrics) ObserveCheck(outcome domain.Outcome) {
	p.checks.WithLabelValues(outcome.String()).Inc()
}

func (p *prometheusMetrics) ObserveRejection(decision domain.Decision) {
	p.rejections.WithLabelValues(decision.String()).Inc()
}

func (p *prometheusMetrics) SetRecords(count int) {
	p.records.Set(float64(count))
}
