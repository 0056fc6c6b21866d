package customer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/customer/metrics"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/upstream"
	strs "github.com/akerstrom/insurance-platform-showcase/pkg/platform/strings"
)

// registrations returns the distinct, normalized registrations of car policies
// in first-seen order.
func registrations(policies []insurance.Insurance) []string {
	raw := make([]string, 0, len(policies))
	for _, p := range policies {
		if p.HasRegistration() {
			raw = append(raw, p.Regnr)
		}
	}
	return strs.DedupeAndTrimUpper(raw)
}

// gatherVehicles looks up every distinct registration concurrently and waits
// for all of them to settle. Each goroutine owns one slot of results and the
// slots are only read after Wait. The returned map holds resolved vehicles
// only, keyed by normalized registration.
func (s *Service) gatherVehicles(ctx context.Context, policies []insurance.Insurance) map[string]*insurance.Vehicle {
	regnrs := registrations(policies)
	s.metrics.ObserveFanOutWidth(len(regnrs))
	if len(regnrs) == 0 {
		return nil
	}

	results := make([]*insurance.Vehicle, len(regnrs))

	g, gctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i, regnr := range regnrs {
		g.Go(func() error {
			// Best-effort: a failed lookup only leaves its slot empty.
			results[i] = s.lookupVehicle(gctx, regnr)
			return nil
		})
	}
	_ = g.Wait()

	byRegnr := make(map[string]*insurance.Vehicle, len(regnrs))
	for i, regnr := range regnrs {
		if results[i] != nil {
			byRegnr[regnr] = results[i]
		}
	}
	return byRegnr
}

// lookupVehicle resolves one registration under its own timeout. It never
// fails; every error is logged, counted, and reported as no vehicle.
func (s *Service) lookupVehicle(ctx context.Context, regnr string) *insurance.Vehicle {
	ctx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "customer.lookupVehicle",
		trace.WithAttributes(attribute.String("vehicle.regnr", regnr)),
	)
	defer span.End()

	start := time.Now()
	vehicle, err := s.vehicles.Vehicle(ctx, regnr)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		outcome := enrichmentOutcome(err)
		s.metrics.IncrementEnrichment(outcome)
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		s.logger.WarnContext(ctx, "vehicle lookup failed, returning policy without vehicle",
			"regnr", regnr,
			"outcome", outcome,
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return nil
	case vehicle == nil:
		s.metrics.IncrementEnrichment(metrics.OutcomeNotFound)
		s.logger.DebugContext(ctx, "vehicle not found",
			"regnr", regnr,
			"duration_ms", elapsed.Milliseconds(),
		)
		return nil
	default:
		s.metrics.IncrementEnrichment(metrics.OutcomeFound)
		return vehicle
	}
}

func enrichmentOutcome(err error) string {
	switch upstream.GetCategory(err) {
	case upstream.ErrorTimeout:
		return metrics.OutcomeTimeout
	case upstream.ErrorNotFound:
		return metrics.OutcomeNotFound
	case upstream.ErrorBadData, upstream.ErrorContractMismatch:
		return metrics.OutcomeBadData
	default:
		return metrics.OutcomeUnavailable
	}
}

// mergeVehicles walks policies in their original order. Only car policies
// with a registration can carry a vehicle, and each entry gets its own copy.
func mergeVehicles(policies []insurance.Insurance, vehicles map[string]*insurance.Vehicle) []insurance.CustomerInsurance {
	out := make([]insurance.CustomerInsurance, 0, len(policies))
	for _, p := range policies {
		ci := insurance.CustomerInsurance{Insurance: p}
		if p.HasRegistration() {
			if v, ok := vehicles[strs.NormalizeKey(p.Regnr)]; ok {
				vehicle := *v
				ci.Vehicle = &vehicle
			}
		}
		out = append(out, ci)
	}
	return out
}
