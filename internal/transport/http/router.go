// Package httptransport builds the chi router every service shares: the common
// middleware chain, health and metrics endpoints, and JSON 404/405 bodies.
// Services contribute their routes through Registrar.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/akerstrom/insurance-platform-showcase/internal/platform/metrics"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/middleware"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/httputil"
)

// Registrar mounts a service's routes.
type Registrar interface {
	Register(r chi.Router)
}

// Deps are the pieces of the shared router that differ per service.
type Deps struct {
	Service        string
	Version        string
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration

	// RateLimiter is optional; nil disables limiting.
	RateLimiter *middleware.IPRateLimiter
}

// NewRouter wires the common middleware and endpoints, then lets each
// registrar add its routes.
func NewRouter(deps Deps, registrars ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.LatencyMiddleware(deps.Metrics))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "Route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"error":   "method_not_allowed",
			"message": "Only GET is supported",
		})
	})

	r.Get("/health", HealthHandler(deps.Service, deps.Version))
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}

	r.Group(func(api chi.Router) {
		api.Use(deps.RateLimiter.RateLimit)
		if deps.RequestTimeout > 0 {
			api.Use(middleware.Timeout(deps.RequestTimeout))
		}
		api.Use(middleware.ContentTypeJSON)
		for _, reg := range registrars {
			reg.Register(api)
		}
	})
	return r
}
