package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP-level collectors every service exposes.
type Metrics struct {
	// Inbound request latency by route pattern, method and status
	RequestLatency *prometheus.HistogramVec

	// Outbound call latency by upstream and outcome category
	UpstreamLatency *prometheus.HistogramVec

	// Requests rejected by the rate limiter
	RateLimited prometheus.Counter
}

// New registers the collectors on reg under the given service label.
func New(reg prometheus.Registerer, service string) *Metrics {
	f := promauto.With(prometheus.WrapRegistererWith(prometheus.Labels{"service": service}, reg))
	return &Metrics{
		RequestLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "insurance_http_request_duration_seconds",
			Help:    "Duration of inbound HTTP requests by route, method and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"route", "method", "status"}),

		UpstreamLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "insurance_upstream_request_duration_seconds",
			Help:    "Duration of outbound calls by upstream and outcome",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"upstream", "outcome"}), // outcome: "ok" or an upstream error category

		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Name: "insurance_http_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		}),
	}
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler exposes the registry in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// ObserveRequest records one inbound request.
func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}

// ObserveUpstream records one outbound call.
func (m *Metrics) ObserveUpstream(upstream, outcome string, d time.Duration) {
	if m != nil {
		m.UpstreamLatency.WithLabelValues(upstream, outcome).Observe(d.Seconds())
	}
}

// IncrementRateLimited counts a rejected request.
func (m *Metrics) IncrementRateLimited() {
	if m != nil {
		m.RateLimited.Inc()
	}
}
