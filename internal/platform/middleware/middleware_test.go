package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akerstrom/insurance-platform-showcase/internal/platform/logger"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/metrics"
	"github.com/akerstrom/insurance-platform-showcase/pkg/testutil"
)

func TestRequestIDEchoesInboundHeader(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := testutil.NewRequest(t, http.MethodGet, "/health")
	req.Header.Set("X-Request-Id", "abc-123")
	rr := testutil.DoRequest(h, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rr := testutil.DoRequest(h, testutil.NewRequest(t, http.MethodGet, "/health"))

	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestRecoveryWritesInternalError(t *testing.T) {
	h := Recovery(logger.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := testutil.DoRequest(h, testutil.NewRequest(t, http.MethodGet, "/"))

	testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "internal_error")
}

func TestLoggerRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "text", "info")
	h := Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	testutil.DoRequest(h, testutil.NewRequest(t, http.MethodGet, "/customers/1/insurances"))

	assert.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), "path=/customers/1/insurances")
}

func TestTimeoutSetsDeadline(t *testing.T) {
	var hasDeadline bool
	h := Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))

	testutil.DoRequest(h, testutil.NewRequest(t, http.MethodGet, "/"))

	assert.True(t, hasDeadline)
}

func TestContentTypeJSON(t *testing.T) {
	h := ContentTypeJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rr := testutil.DoRequest(h, testutil.NewRequest(t, http.MethodGet, "/"))

	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestLatencyMiddlewareUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, "customer-service")

	r := chi.NewRouter()
	r.Use(LatencyMiddleware(m))
	r.Get("/customers/{pid}/insurances", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/customers/199001011234/insurances"))

	rr := testutil.DoRequest(metrics.Handler(reg), testutil.NewRequest(t, http.MethodGet, "/metrics"))
	body := rr.Body.String()
	assert.Contains(t, body, `route="/customers/{pid}/insurances"`)
	assert.NotContains(t, body, "199001011234")
}

func TestRateLimit(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2, logger.Discard(), nil)
	require.NotNil(t, limiter)
	h := limiter.RateLimit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remote string) *httptest.ResponseRecorder {
		req := testutil.NewRequest(t, http.MethodGet, "/customers/1/insurances")
		req.RemoteAddr = remote
		return testutil.DoRequest(h, req)
	}

	testutil.AssertStatusOK(t, send("10.0.0.1:1000"))
	testutil.AssertStatusOK(t, send("10.0.0.1:1001"))

	rr := send("10.0.0.1:1002")
	testutil.AssertStatusAndError(t, rr, http.StatusTooManyRequests, "rate_limited")
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))

	testutil.AssertStatusOK(t, send("10.0.0.2:1000"))
}

func TestRateLimitDisabled(t *testing.T) {
	limiter := NewIPRateLimiter(0, 0, logger.Discard(), nil)
	assert.Nil(t, limiter)

	h := limiter.RateLimit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	for range 5 {
		testutil.AssertStatusOK(t, testutil.DoRequest(h, testutil.NewRequest(t, http.MethodGet, "/")))
	}
}
