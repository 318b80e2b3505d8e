package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
	"github.com/MKhiriev/go-sos-relay/models"
)

func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	roomID, collection, ok := h.roomCollection(w, r)
	if !ok {
		return
	}

	records, err := h.services.HubService.Pull(r.Context(), roomID, collection)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.pull").Msg("error loading replica")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PullResponse{
		Collection: collection.Name,
		Records:    records,
		Length:     len(records),
	}, http.StatusOK)
}

// push expects a body already verified by pushHashing.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	roomID, collection, ok := h.roomCollection(w, r)
	if !ok {
		return
	}

	var req models.PushRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.push").Msg("Invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	report, err := h.services.HubService.Push(r.Context(), roomID, collection, req.Records)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.push").Msg("error merging push")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

// export returns the QR parts of the room's replica. The optional "key"
// query parameter exports a single record.
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	roomID, collection, ok := h.roomCollection(w, r)
	if !ok {
		return
	}

	resp, err := h.services.HubService.Export(r.Context(), roomID, collection, r.URL.Query().Get("key"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// importPart feeds one scanned QR text into the room's transfers. A
// rejected payload is answered with 422 and the result body.
func (h *Handler) importPart(w http.ResponseWriter, r *http.Request) {
	roomID, collection, ok := h.roomCollection(w, r)
	if !ok {
		return
	}

	var req models.ImportRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	res, err := h.services.HubService.Import(r.Context(), roomID, collection, req.Text)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.importPart").Msg("error importing part")
		h.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if res.Status == models.ImportRejected {
		status = http.StatusUnprocessableEntity
	}
	utils.WriteJSON(w, res, status)
}

// roomCollection resolves the authenticated room and the collection of the
// path. It writes the error reply and returns false when either is missing.
func (h *Handler) roomCollection(w http.ResponseWriter, r *http.Request) (string, models.Collection, bool) {
	roomID, ok := utils.GetRoomIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrNoRoomIDProvided)
		return "", models.Collection{}, false
	}

	collection, ok := models.CollectionByName(chi.URLParam(r, "collection"))
	if !ok {
		h.writeError(w, r, service.ErrUnknownCollection)
		return "", models.Collection{}, false
	}

	return roomID, collection, true
}
