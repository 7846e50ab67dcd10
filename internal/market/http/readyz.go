package http

import (
	"net/http"
	"time"

	"github.com/openlocal/market/internal/market/store"
	"github.com/openlocal/market/pkg/httpx"
	"github.com/openlocal/market/pkg/marketsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Returns 200 when the service can reach its database, 503
//	@Description	otherwise.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	marketsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	marketsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &marketsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, marketsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
