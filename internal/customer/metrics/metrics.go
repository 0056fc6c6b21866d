package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Vehicle enrichment outcomes.
const (
	OutcomeFound       = "found"
	OutcomeNotFound    = "not_found"
	OutcomeTimeout     = "timeout"
	OutcomeUnavailable = "unavailable"
	OutcomeBadData     = "bad_data"
)

// Metrics provides observability for the aggregation service.
type Metrics struct {
	// Vehicle lookups by outcome
	EnrichmentOutcome *prometheus.CounterVec

	// Distinct registrations looked up per request
	FanOutWidth prometheus.Histogram

	// Full aggregation latency including the fan-out
	AggregateLatency prometheus.Histogram
}

// New creates a new Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EnrichmentOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "insurance_customer_vehicle_enrichment_total",
			Help: "Vehicle lookups made while enriching car policies, by outcome",
		}, []string{"outcome"}),

		FanOutWidth: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "insurance_customer_vehicle_fanout_width",
			Help:    "Number of concurrent vehicle lookups issued per request",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		}),

		AggregateLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "insurance_customer_aggregate_duration_seconds",
			Help:    "Duration of customer insurance aggregation including vehicle enrichment",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementEnrichment records one vehicle lookup outcome.
func (m *Metrics) IncrementEnrichment(outcome string) {
	if m != nil {
		m.EnrichmentOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveFanOutWidth records how many lookups one request issued.
func (m *Metrics) ObserveFanOutWidth(n int) {
	if m != nil {
		m.FanOutWidth.Observe(float64(n))
	}
}

// ObserveAggregateLatency records the total aggregation duration.
func (m *Metrics) ObserveAggregateLatency(d time.Duration) {
	if m != nil {
		m.AggregateLatency.Observe(d.Seconds())
	}
}
