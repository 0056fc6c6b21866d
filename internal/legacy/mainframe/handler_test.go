package mainframe

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akerstrom/insurance-platform-showcase/internal/platform/logger"
	"github.com/akerstrom/insurance-platform-showcase/pkg/testutil"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	store, err := Load("")
	require.NoError(t, err)
	r := chi.NewRouter()
	NewHandler(store, logger.Discard()).Register(r)
	return r
}

func TestHandleListPolicies(t *testing.T) {
	r := newRouter(t)

	testutil.Given(t, "a customer with a single car policy", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/policies/198505152345"))

		testutil.Then(t, "the ledger row is returned in the legacy vocabulary", func(t *testing.T) {
			testutil.AssertStatusOK(t, rr)
			assert.JSONEq(t, `[{
				"id": "44444444-4444-4444-4444-444444444444",
				"pid": "198505152345",
				"type": "CAR",
				"status": "Active",
				"premium": 30,
				"regnr": "XYZ789"
			}]`, rr.Body.String())
		})
	})

	testutil.Given(t, "a pid without policies", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/policies/000000000000"))

		testutil.Then(t, "404", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
		})
	})

	testutil.Given(t, "a non-car policy", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/policies/197212123456"))

		testutil.Then(t, "regnr is omitted", func(t *testing.T) {
			testutil.AssertStatusOK(t, rr)
			assert.NotContains(t, rr.Body.String(), "regnr")
		})
	})
}
