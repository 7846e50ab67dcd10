package http

import (
	"net/http"
	"time"

	"github.com/openlocal/market/pkg/httpx"
	"github.com/openlocal/market/pkg/marketsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns 200 with uptime and version whenever the process
//	@Description	is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	marketsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, marketsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
