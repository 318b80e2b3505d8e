package http

import (
	"net/http"

	"github.com/MKhiriev/go-sos-relay/internal/utils"
)

// getServerVersion describes the hub build. Clients compare the protocol
// field before relaying codes produced by another build.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}
