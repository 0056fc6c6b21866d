package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/middleware"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/httputil"
)

// Service defines the interface for customer aggregation.
type Service interface {
	CustomerInsurances(ctx context.Context, pid string) ([]insurance.CustomerInsurance, error)
}

// Handler exposes the aggregated customer view.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a customer handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts customer endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/customers/{pid}/insurances", h.HandleGetCustomerInsurances)
}

// HandleGetCustomerInsurances handles GET /customers/{pid}/insurances.
func (h *Handler) HandleGetCustomerInsurances(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	start := time.Now()
	pid := chi.URLParam(r, "pid")

	result, err := h.service.CustomerInsurances(ctx, pid)
	if err != nil {
		level := slog.LevelError
		if dErrors.HasCode(err, dErrors.CodeNotFound) || dErrors.HasCode(err, dErrors.CodeBadRequest) {
			level = slog.LevelInfo
		}
		h.logger.Log(ctx, level, "customer insurance lookup failed",
			"request_id", requestID,
			"code", dErrors.CodeOf(err),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	enriched := 0
	for _, ci := range result {
		if ci.Vehicle != nil {
			enriched++
		}
	}
	h.logger.InfoContext(ctx, "customer insurances aggregated",
		"request_id", requestID,
		"count", len(result),
		"with_vehicle", enriched,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}
