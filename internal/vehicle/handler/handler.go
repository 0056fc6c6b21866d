package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/middleware"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/httputil"
)

// Service defines the interface for vehicle lookups.
type Service interface {
	Vehicle(ctx context.Context, regnr string) (*insurance.Vehicle, error)
}

// Handler wires the vehicle endpoint to the facade service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a vehicle handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts vehicle endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/vehicles/{regnr}", h.HandleGetVehicle)
}

// HandleGetVehicle handles GET /vehicles/{regnr}.
func (h *Handler) HandleGetVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	regnr := chi.URLParam(r, "regnr")

	vehicle, err := h.service.Vehicle(ctx, regnr)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.WarnContext(ctx, "vehicle lookup failed",
				"request_id", middleware.GetRequestID(ctx),
				"regnr", regnr,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, vehicle)
}
