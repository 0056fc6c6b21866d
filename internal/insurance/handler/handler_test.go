package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	contract "github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/internal/platform/logger"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
	"github.com/akerstrom/insurance-platform-showcase/pkg/testutil"
)

type serviceFunc func(ctx context.Context, pid string) ([]contract.Insurance, error)

func (f serviceFunc) Insurances(ctx context.Context, pid string) ([]contract.Insurance, error) {
	return f(ctx, pid)
}

func newRouter(svc Service) chi.Router {
	r := chi.NewRouter()
	New(svc, logger.Discard()).Register(r)
	return r
}

func TestHandleGetInsurances(t *testing.T) {
	car := contract.Insurance{
		ID:      uuid.MustParse("44444444-4444-4444-4444-444444444444"),
		Pid:     "198505152345",
		Type:    contract.InsuranceTypeCar,
		Status:  "Active",
		Premium: contract.MustMoney("30"),
		Regnr:   "XYZ789",
	}

	testutil.Given(t, "a customer with policies", func(t *testing.T) {
		svc := serviceFunc(func(_ context.Context, pid string) ([]contract.Insurance, error) {
			assert.Equal(t, "198505152345", pid)
			return []contract.Insurance{car}, nil
		})
		rr := testutil.DoRequest(newRouter(svc), testutil.NewRequest(t, http.MethodGet, "/insurances/198505152345"))

		testutil.Then(t, "the canonical shape is returned", func(t *testing.T) {
			testutil.AssertStatusOK(t, rr)
			assert.JSONEq(t, `[{
				"id": "44444444-4444-4444-4444-444444444444",
				"pid": "198505152345",
				"type": "Car",
				"status": "Active",
				"premium": 30,
				"regnr": "XYZ789"
			}]`, rr.Body.String())
		})
	})

	testutil.Given(t, "a customer without policies", func(t *testing.T) {
		svc := serviceFunc(func(context.Context, string) ([]contract.Insurance, error) {
			return []contract.Insurance{}, nil
		})
		rr := testutil.DoRequest(newRouter(svc), testutil.NewRequest(t, http.MethodGet, "/insurances/000000000000"))

		testutil.Then(t, "404", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
		})
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"blank pid", dErrors.New(dErrors.CodeBadRequest, "Personal identification number is required"), http.StatusBadRequest, "bad_request"},
		{"ledger unreachable", dErrors.New(dErrors.CodeServiceUnavailable, "Policy store is unavailable"), http.StatusServiceUnavailable, "service_unavailable"},
		{"ledger timeout", dErrors.New(dErrors.CodeGatewayTimeout, "Policy store did not respond in time"), http.StatusGatewayTimeout, "gateway_timeout"},
		{"translation error", dErrors.New(dErrors.CodeInternal, "Policy store returned an invalid response"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range errorCases {
		testutil.Given(t, tc.name, func(t *testing.T) {
			svc := serviceFunc(func(context.Context, string) ([]contract.Insurance, error) {
				return nil, tc.err
			})
			rr := testutil.DoRequest(newRouter(svc), testutil.NewRequest(t, http.MethodGet, "/insurances/199001011234"))

			testutil.Then(t, http.StatusText(tc.status), func(t *testing.T) {
				testutil.AssertStatusAndError(t, rr, tc.status, tc.code)
			})
		})
	}

	testutil.Given(t, "a translation error", func(t *testing.T) {
		svc := serviceFunc(func(context.Context, string) ([]contract.Insurance, error) {
			return nil, dErrors.New(dErrors.CodeInternal, "unrecognized policy type \"BOAT\"")
		})
		rr := testutil.DoRequest(newRouter(svc), testutil.NewRequest(t, http.MethodGet, "/insurances/199001011234"))

		testutil.Then(t, "the detail is not exposed", func(t *testing.T) {
			assert.NotContains(t, rr.Body.String(), "BOAT")
		})
	})
}
