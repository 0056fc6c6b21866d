// Package vehicle is the vehicle lookup facade in front of the legacy vehicle
// register.
package vehicle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/upstream"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
)

// VehicleSource returns a vehicle or (nil, nil) when none is registered.
type VehicleSource interface {
	Vehicle(ctx context.Context, regnr string) (*insurance.Vehicle, error)
}

// Service resolves registrations against the register.
type Service struct {
	source VehicleSource
	logger *slog.Logger
}

// NewService constructs the facade service.
func NewService(source VehicleSource, logger *slog.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Vehicle looks up regnr. Blank input is a bad request, an absent vehicle is
// not found, and register failures keep their timeout/unavailable meaning.
func (s *Service) Vehicle(ctx context.Context, regnr string) (*insurance.Vehicle, error) {
	regnr = strings.TrimSpace(regnr)
	if regnr == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Registration number is required")
	}

	vehicle, err := s.source.Vehicle(ctx, regnr)
	if err != nil {
		s.logger.ErrorContext(ctx, "vehicle register call failed",
			"regnr", regnr,
			"category", upstream.GetCategory(err),
			"error", err,
		)
		return nil, upstream.ToDomain(err, "Vehicle database")
	}
	if vehicle == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("No vehicle found with registration %s", regnr))
	}
	return vehicle, nil
}
