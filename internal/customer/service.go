// Package customer is the aggregation service: it lists a customer's
// policies and enriches car policies with vehicle details looked up
// concurrently.
package customer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/customer/metrics"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/upstream"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
)

const (
	defaultLookupTimeout = 10 * time.Second
	tracerName           = "github.com/akerstrom/insurance-platform-showcase/internal/customer"
)

// InsuranceSource lists a customer's policies; an empty slice means none.
type InsuranceSource interface {
	Insurances(ctx context.Context, pid string) ([]insurance.Insurance, error)
}

// VehicleSource returns a vehicle or (nil, nil) when none is registered.
type VehicleSource interface {
	Vehicle(ctx context.Context, regnr string) (*insurance.Vehicle, error)
}

// Service aggregates policies and vehicles for a customer.
type Service struct {
	insurances InsuranceSource
	vehicles   VehicleSource
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer

	lookupTimeout time.Duration
	concurrency   int
}

// Option configures a Service.
type Option func(*Service)

// WithLookupTimeout bounds each vehicle lookup.
func WithLookupTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.lookupTimeout = d
		}
	}
}

// WithConcurrency caps in-flight vehicle lookups per request. Zero means no cap.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.concurrency = n
		}
	}
}

// WithMetrics records enrichment outcomes and latency.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService constructs the aggregation service.
func NewService(insurances InsuranceSource, vehicles VehicleSource, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		insurances:    insurances,
		vehicles:      vehicles,
		logger:        logger,
		tracer:        otel.Tracer(tracerName),
		lookupTimeout: defaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CustomerInsurances returns every policy held by pid in translation-service
// order, car policies carrying their vehicle when it could be resolved.
//
// The policy lookup is strict: its failure fails the request. Vehicle lookups
// are best-effort: any failure leaves that policy's vehicle nil.
func (s *Service) CustomerInsurances(ctx context.Context, pid string) (_ []insurance.CustomerInsurance, err error) {
	if strings.TrimSpace(pid) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Personal identification number is required")
	}

	ctx, span := s.tracer.Start(ctx, "customer.CustomerInsurances")
	start := time.Now()
	defer func() {
		s.metrics.ObserveAggregateLatency(time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		}
		span.End()
	}()

	policies, err := s.insurances.Insurances(ctx, pid)
	if err != nil {
		s.logger.ErrorContext(ctx, "insurance lookup failed",
			"category", upstream.GetCategory(err),
			"error", err,
		)
		return nil, upstream.ToDomain(err, "Insurance service")
	}
	if len(policies) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("No insurances found for PID %s", pid))
	}
	span.SetAttributes(attribute.Int("insurance.count", len(policies)))

	vehicles := s.gatherVehicles(ctx, policies)
	return mergeVehicles(policies, vehicles), nil
}
