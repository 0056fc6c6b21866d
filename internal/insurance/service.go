// Package insurance is the policy translation service: it reads the legacy
// ledger and re-expresses each row in the canonical insurance contract.
package insurance

import (
	"context"
	"log/slog"
	"strings"

	contract "github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/upstream"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/validator"
)

const ledgerName = "policy-mainframe"

// PolicySource returns a pid's ledger rows, or an empty slice when the ledger
// has none.
type PolicySource interface {
	Policies(ctx context.Context, pid string) ([]PolicyRecord, error)
}

// Service translates ledger rows for a customer.
type Service struct {
	source    PolicySource
	validator *validator.Validator
	logger    *slog.Logger
}

// NewService constructs the translation service.
func NewService(source PolicySource, logger *slog.Logger) *Service {
	return &Service{
		source:    source,
		validator: validator.New(),
		logger:    logger,
	}
}

// Insurances returns the customer's policies in ledger order. An empty result
// is not an error here; callers decide what "none" means. A single row that
// cannot be translated or fails validation fails the whole call.
func (s *Service) Insurances(ctx context.Context, pid string) ([]contract.Insurance, error) {
	if strings.TrimSpace(pid) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Personal identification number is required")
	}

	records, err := s.source.Policies(ctx, pid)
	if err != nil {
		s.logger.ErrorContext(ctx, "policy ledger call failed",
			"category", upstream.GetCategory(err),
			"error", err,
		)
		return nil, upstream.ToDomain(err, "Policy store")
	}

	out := make([]contract.Insurance, 0, len(records))
	for _, rec := range records {
		ins, err := Translate(rec)
		if err != nil {
			return nil, s.translationFailed(ctx, upstream.ErrorContractMismatch, "untranslatable policy type", err)
		}
		if err := s.validator.Struct(ins); err != nil {
			return nil, s.translationFailed(ctx, upstream.ErrorBadData, "invalid policy record", err)
		}
		out = append(out, ins)
	}
	return out, nil
}

func (s *Service) translationFailed(ctx context.Context, category upstream.ErrorCategory, msg string, err error) error {
	uerr := upstream.NewError(category, ledgerName, msg, err)
	s.logger.ErrorContext(ctx, "policy translation failed",
		"category", category,
		"error", uerr,
	)
	return upstream.ToDomain(uerr, "Policy store")
}
