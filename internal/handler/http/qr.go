package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
	"github.com/MKhiriev/go-sos-relay/models"
)

// renderQR answers with the PNG of one export part.
func (h *Handler) renderQR(w http.ResponseWriter, r *http.Request) {
	var req models.QRRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	png, err := h.renderer.PNG(req.Text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
