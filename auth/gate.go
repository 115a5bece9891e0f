// Package auth guards announcements with the shared write token.
package auth

import (
	"crypto/subtle"
	"sync/atomic"

	"myheartbeat/domain"
	"myheartbeat/interfaces"
	"myheartbeat/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HeaderWriteToken is the request header carrying the write token.
const HeaderWriteToken = "X-Write-Token"

// Authorize compares the presented token with the configured one in constant time.
// A nil presented means the caller sent no token at all.
func Authorize(presented *string, configured string) domain.Decision {
	if presented == nil {
		return domain.DecisionMissing
	}
	if subtle.ConstantTimeCompare([]byte(*presented), []byte(configured)) != 1 {
		return domain.DecisionMismatch
	}
	return domain.DecisionAuthorized
}

// Gate rejects announcements that do not carry the configured write token.
type Gate struct {
	secret  atomic.Pointer[string]
	metrics interfaces.Metrics
	logger  log.Logger
}

// NewGate creates a Gate for the given secret.
func NewGate(secret string, metrics interfaces.Metrics, logger log.Logger) *Gate {
	g := &Gate{
		metrics: metrics,
		logger:  log.WithPrefix(logger, "component", "Gate"),
	}
	g.SetSecret(secret)
	return g
}

// SetSecret replaces the configured secret. Safe to call while requests are served.
func (g *Gate) SetSecret(secret string) {
	g.secret.Store(&secret)
}

// Secret returns the configured secret.
func (g *Gate) Secret() string {
	return *g.secret.Load()
}

// Middleware returns an echo middleware that lets a request through only when
// Authorize reports DecisionAuthorized for its X-Write-Token header.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var presented *string
			if values := c.Request().Header.Values(HeaderWriteToken); len(values) > 0 {
				if !isVisibleASCII(values[0]) {
					return service.NewBadParameterError("write token is not a valid header value", nil)
				}
				presented = service.Ptr(values[0])
			}

			decision := Authorize(presented, g.Secret())
			switch decision {
			case domain.DecisionAuthorized:
				return next(c)
			case domain.DecisionMissing:
				level.Warn(g.logger).Log("msg", "Missing token", "path", c.Request().URL.Path)
				g.metrics.ObserveRejection(decision)
				return service.NewUnauthorizedError("missing write token")
			default:
				// never log the presented value itself
				level.Warn(g.logger).Log(
					"msg", "Invalid token",
					"path", c.Request().URL.Path,
					"token_length", len(service.Value(presented)),
				)
				g.metrics.ObserveRejection(decision)
				return service.NewUnauthorizedError("invalid write token")
			}
		}
	}
}

func isVisibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != '\t' && (b < 0x20 || b > 0x7e) {
			return false
		}
	}
	return true
}
