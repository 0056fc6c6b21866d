package mainframe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akerstrom/insurance-platform-showcase/internal/platform/middleware"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/httputil"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/sentinel"
)

// Lister returns the policies held by a pid.
type Lister interface {
	ListByPid(ctx context.Context, pid string) ([]Policy, error)
}

// Handler serves the legacy policy ledger.
type Handler struct {
	store  Lister
	logger *slog.Logger
}

// NewHandler constructs the ledger handler.
func NewHandler(store Lister, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register mounts GET /policies/{pid}.
func (h *Handler) Register(r chi.Router) {
	r.Get("/policies/{pid}", h.HandleListPolicies)
}

// HandleListPolicies handles GET /policies/{pid}. The ledger has no notion of
// an empty customer, so no policies is a 404.
func (h *Handler) HandleListPolicies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pid := chi.URLParam(r, "pid")

	policies, err := h.store.ListByPid(ctx, pid)
	if errors.Is(err, sentinel.ErrNotFound) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("No policies found for PID %s", pid)))
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "policy lookup failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.DebugContext(ctx, "policies listed",
		"request_id", middleware.GetRequestID(ctx),
		"count", len(policies),
	)
	httputil.WriteJSON(w, http.StatusOK, policies)
}
