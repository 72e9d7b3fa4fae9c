package http

import (
	"net/http"
	"time"

	"github.com/klantsync/klantsync/pkg/httpx"
	"github.com/klantsync/klantsync/pkg/portalsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe Endpoint
//	@Description	Returns 200 OK with uptime and version whenever the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	portalsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, portalsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
