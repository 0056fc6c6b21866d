package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	contract "github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/middleware"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/httputil"
)

// Service defines the interface for policy translation.
type Service interface {
	Insurances(ctx context.Context, pid string) ([]contract.Insurance, error)
}

// Handler wires the insurance endpoint to the translation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an insurance handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts insurance endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/insurances/{pid}", h.HandleGetInsurances)
}

// HandleGetInsurances handles GET /insurances/{pid}.
func (h *Handler) HandleGetInsurances(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	start := time.Now()
	pid := chi.URLParam(r, "pid")

	insurances, err := h.service.Insurances(ctx, pid)
	if err != nil {
		h.logger.ErrorContext(ctx, "insurance lookup failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if len(insurances) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("No insurances found for PID %s", pid)))
		return
	}

	h.logger.InfoContext(ctx, "insurances translated",
		"request_id", requestID,
		"count", len(insurances),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, insurances)
}
