package http

import (
	"net/http"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
	"github.com/MKhiriev/go-sos-relay/models"
)

// registerRoom answers 201 for a new room and 200 when the room is already
// known with the same key.
func (h *Handler) registerRoom(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var room models.Room
	if err := utils.ReadJSON(r, &room); err != nil {
		log.Err(err).Str("func", "*Handler.registerRoom").Msg("Invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	created, err := h.services.HubService.RegisterRoom(r.Context(), room)
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerRoom").Str("room_id", room.ID).Msg("room registration failed")
		h.writeError(w, r, err)
		return
	}

	if created {
		w.WriteHeader(http.StatusCreated)
		return
	}
	w.WriteHeader(http.StatusOK)
}
