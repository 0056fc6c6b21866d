package httptransport

import (
	"net/http"
	"time"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/httputil"
)

// HealthHandler reports liveness. It has no dependencies so it stays up even
// when upstreams are down.
func HealthHandler(service, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, insurance.HealthResponse{
			Status:    "healthy",
			Service:   service,
			Timestamp: time.Now().UTC(),
			Version:   version,
		})
	}
}
