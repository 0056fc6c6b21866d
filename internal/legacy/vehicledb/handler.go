package vehicledb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/middleware"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/httputil"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/sentinel"
)

// Finder looks up a vehicle by registration.
type Finder interface {
	FindByRegnr(ctx context.Context, regnr string) (*insurance.Vehicle, error)
}

// Handler serves the legacy vehicle register.
type Handler struct {
	store  Finder
	logger *slog.Logger
}

// NewHandler constructs the register handler.
func NewHandler(store Finder, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register mounts GET /vehicles/{regnr}.
func (h *Handler) Register(r chi.Router) {
	r.Get("/vehicles/{regnr}", h.HandleGetVehicle)
}

// HandleGetVehicle handles GET /vehicles/{regnr}.
func (h *Handler) HandleGetVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	regnr := strings.TrimSpace(chi.URLParam(r, "regnr"))
	if regnr == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Registration number is required"))
		return
	}

	vehicle, err := h.store.FindByRegnr(ctx, regnr)
	if errors.Is(err, sentinel.ErrNotFound) {
		h.logger.DebugContext(ctx, "vehicle not found",
			"request_id", middleware.GetRequestID(ctx),
			"regnr", regnr,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("No vehicle found with registration %s", regnr)))
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "vehicle lookup failed",
			"request_id", middleware.GetRequestID(ctx),
			"regnr", regnr,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, vehicle)
}
