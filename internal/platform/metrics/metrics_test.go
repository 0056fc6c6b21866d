package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("/health", http.MethodGet, "200", time.Millisecond)
		m.ObserveUpstream("vehicle-service", "ok", time.Millisecond)
		m.IncrementRateLimited()
	})
}

func TestRateLimitedCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, "customer-service")

	m.IncrementRateLimited()
	m.IncrementRateLimited()

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "insurance_http_rate_limited_total", families[0].GetName())
	assert.Equal(t, float64(2), families[0].GetMetric()[0].GetCounter().GetValue())
}

func TestHandlerExposesServiceLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, "insurance-service")
	m.ObserveUpstream("policy-mainframe", "timeout", 50*time.Millisecond)

	rr := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "insurance_upstream_request_duration_seconds")
	assert.Contains(t, body, `service="insurance-service"`)
	assert.Contains(t, body, `outcome="timeout"`)
}

func TestNewRegistryCanBeRegisteredTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		New(NewRegistry(), "a")
		New(NewRegistry(), "b")
	})
}
