package auth

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"myheartbeat/domain"
	"myheartbeat/interfaces/mock"
	"myheartbeat/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		presented  *string
		configured string
		expected   domain.Decision
	}{
		{name: "missing", presented: nil, configured: "secret", expected: domain.DecisionMissing},
		{name: "mismatch", presented: service.Ptr("wrong"), configured: "secret", expected: domain.DecisionMismatch},
		{name: "empty presented", presented: service.Ptr(""), configured: "secret", expected: domain.DecisionMismatch},
		{name: "case matters", presented: service.Ptr("Secret"), configured: "secret", expected: domain.DecisionMismatch},
		{name: "authorized", presented: service.Ptr("secret"), configured: "secret", expected: domain.DecisionAuthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Authorize(tt.presented, tt.configured))
		})
	}
}

func newGateEcho(gate *Gate) *echo.Echo {
	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	e.PUT("/health/:name", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, gate.Middleware())
	return e
}

func TestGate_Middleware(t *testing.T) {
	tests := []struct {
		name             string
		header           []string
		expectedStatus   int
		expectedRejected []domain.Decision
	}{
		{name: "authorized", header: []string{"secret"}, expectedStatus: http.StatusOK},
		{name: "missing", header: nil, expectedStatus: http.StatusUnauthorized, expectedRejected: []domain.Decision{domain.DecisionMissing}},
		{name: "mismatch", header: []string{"nope"}, expectedStatus: http.StatusUnauthorized, expectedRejected: []domain.Decision{domain.DecisionMismatch}},
		{name: "empty value", header: []string{""}, expectedStatus: http.StatusUnauthorized, expectedRejected: []domain.Decision{domain.DecisionMismatch}},
		{name: "non visible ascii", header: []string{"sécret"}, expectedStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := &mock.MetricsMock{}
			e := newGateEcho(NewGate("secret", metrics, log.NewNopLogger()))

			req := httptest.NewRequest(http.MethodPut, "/health/svc", nil)
			for _, v := range tt.header {
				req.Header.Add(HeaderWriteToken, v)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			rejected := make([]domain.Decision, 0)
			for _, call := range metrics.ObserveRejectionCalls() {
				rejected = append(rejected, call.Decision)
			}
			if tt.expectedRejected == nil {
				assert.Empty(t, rejected)
			} else {
				assert.Equal(t, tt.expectedRejected, rejected)
			}
		})
	}
}

func TestGate_Middleware_DoesNotLogPresentedToken(t *testing.T) {
	var buf bytes.Buffer
	e := newGateEcho(NewGate("secret", &mock.MetricsMock{}, log.NewLogfmtLogger(&buf)))

	req := httptest.NewRequest(http.MethodPut, "/health/svc", nil)
	req.Header.Set(HeaderWriteToken, "almost-the-secret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, buf.String(), "Invalid token")
	assert.Contains(t, buf.String(), "token_length=17")
	assert.NotContains(t, buf.String(), "almost-the-secret")
}

func TestGate_SetSecret(t *testing.T) {
	gate := NewGate("old", &mock.MetricsMock{}, log.NewNopLogger())
	e := newGateEcho(gate)

	gate.SetSecret("new")
	assert.Equal(t, "new", gate.Secret())

	for token, status := range map[string]int{"old": http.StatusUnauthorized, "new": http.StatusOK} {
		req := httptest.NewRequest(http.MethodPut, "/health/svc", nil)
		req.Header.Set(HeaderWriteToken, token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, status, rec.Code, "token %s", token)
	}
}
