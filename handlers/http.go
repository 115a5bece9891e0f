// Package handlers contains the http and grpc handlers for myheartbeat.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"myheartbeat/domain"
	"myheartbeat/interfaces"
	"myheartbeat/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// DefaultDeadline is used when an announcement carries no usable deadline_seconds.
const DefaultDeadline = 15 * time.Second

// liveness runs registry checks on behalf of both transports.
type liveness struct {
	registry interfaces.Registry
	clock    interfaces.TimeProvider
	metrics  interfaces.Metrics
	logger   log.Logger
}

// check asks the registry about name and records the outcome. Expired and
// unknown names are told apart only in logs and metrics.
func (l *liveness) check(name string) domain.Outcome {
	outcome := l.registry.Check(name, l.clock.Now())
	l.metrics.ObserveCheck(outcome)

	switch outcome {
	case domain.OutcomeAlive:
		level.Info(l.logger).Log("msg", "Service has not expired", "name", name)
	case domain.OutcomeExpired:
		level.Info(l.logger).Log("msg", "Service has expired", "name", name)
		l.metrics.SetRecords(l.registry.Len())
	default:
		level.Info(l.logger).Log("msg", "Service has not been pinged or has expired", "name", name)
	}
	return outcome
}

func goneError(name string) error {
	return service.NewGoneError(fmt.Sprintf("service %q is not alive", name))
}

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	liveness
	defaultDeadline time.Duration
}

// NewHTTPServer creates a new HTTPServer. A non-positive defaultDeadline means DefaultDeadline.
func NewHTTPServer(
	registry interfaces.Registry,
	clock interfaces.TimeProvider,
	metrics interfaces.Metrics,
	defaultDeadline time.Duration,
	logger log.Logger,
) *HTTPServer {
	if defaultDeadline <= 0 {
		defaultDeadline = DefaultDeadline
	}
	return &HTTPServer{
		liveness: liveness{
			registry: registry,
			clock:    clock,
			metrics:  metrics,
			logger:   log.WithPrefix(logger, "component", "HTTPServer"),
		},
		defaultDeadline: defaultDeadline,
	}
}

// Announce (PUT /health/{name}) refreshes the deadline of name. Returns 200 with an empty body.
// The write token has already been checked by the auth.Gate middleware.
func (h *HTTPServer) Announce(ectx echo.Context, name string, params AnnounceParams) error {
	ttl := fromDeadlineSeconds(params.DeadlineSeconds, h.defaultDeadline)
	level.Info(h.logger).Log("msg", "Ping", "name", name, "deadline", ttl)

	h.registry.Upsert(name, ttl, h.clock.Now())
	h.metrics.ObserveAnnounce()
	h.metrics.SetRecords(h.registry.Len())

	return ectx.NoContent(http.StatusOK)
}

// Query (GET /health/{name}) returns 200 when name is alive and 410 otherwise.
func (h *HTTPServer) Query(ectx echo.Context, name string) error {
	if h.check(name) != domain.OutcomeAlive {
		return goneError(name)
	}
	return ectx.NoContent(http.StatusOK)
}
