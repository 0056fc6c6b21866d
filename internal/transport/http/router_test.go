package httptransport

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/logger"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/metrics"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/middleware"
	"github.com/akerstrom/insurance-platform-showcase/pkg/testutil"
)

type pingRoutes struct{}

func (pingRoutes) Register(r chi.Router) {
	r.Get("/ping/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline := r.Context().Deadline()
		if !hasDeadline {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id":"` + chi.URLParam(r, "id") + `"}`))
	})
}

func newTestRouter(limiter *middleware.IPRateLimiter) http.Handler {
	reg := prometheus.NewRegistry()
	return NewRouter(Deps{
		Service:        "test-service",
		Version:        "1.2.3",
		Logger:         logger.Discard(),
		Metrics:        metrics.New(reg, "test-service"),
		Gatherer:       reg,
		RequestTimeout: time.Second,
		RateLimiter:    limiter,
	}, pingRoutes{})
}

func TestHealth(t *testing.T) {
	rr := testutil.DoRequest(newTestRouter(nil), testutil.NewRequest(t, http.MethodGet, "/health"))

	testutil.AssertStatusOK(t, rr)
	body := testutil.UnmarshalResponse[insurance.HealthResponse](t, rr)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "test-service", body.Service)
	assert.Equal(t, "1.2.3", body.Version)
	assert.False(t, body.Timestamp.IsZero())
}

func TestRegisteredRoutesGetTimeoutAndJSON(t *testing.T) {
	rr := testutil.DoRequest(newTestRouter(nil), testutil.NewRequest(t, http.MethodGet, "/ping/7"))

	testutil.AssertStatusOK(t, rr)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"id":"7"}`, rr.Body.String())
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	rr := testutil.DoRequest(newTestRouter(nil), testutil.NewRequest(t, http.MethodGet, "/nope"))

	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}

func TestWrongMethodIsJSON405(t *testing.T) {
	rr := testutil.DoRequest(newTestRouter(nil), testutil.NewRequest(t, http.MethodPost, "/health"))

	testutil.AssertStatusAndError(t, rr, http.StatusMethodNotAllowed, "method_not_allowed")
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(nil)
	testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/ping/1"))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))

	testutil.AssertStatusOK(t, rr)
	assert.Contains(t, rr.Body.String(), `route="/ping/{id}"`)
}

func TestRateLimitAppliesToServiceRoutesOnly(t *testing.T) {
	router := newTestRouter(middleware.NewIPRateLimiter(1, 1, logger.Discard(), nil))

	send := func(path string) int {
		req := testutil.NewRequest(t, http.MethodGet, path)
		req.RemoteAddr = "192.0.2.1:4000"
		return testutil.DoRequest(router, req).Code
	}

	assert.Equal(t, http.StatusOK, send("/ping/1"))
	assert.Equal(t, http.StatusTooManyRequests, send("/ping/2"))
	assert.Equal(t, http.StatusOK, send("/health"))
}
