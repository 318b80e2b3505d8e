package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
	"github.com/MKhiriev/go-sos-relay/models"
)

// pushHashing verifies that the records of a push match the HMAC sent with
// them under the room key. It must run after auth.
func (h *Handler) pushHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r).With().Str("func", "*Handler.pushHashing").Logger()
		ctx := r.Context()

		roomID, ok := utils.GetRoomIDFromContext(ctx)
		if !ok {
			h.writeError(w, r, service.ErrNoRoomIDProvided)
			return
		}

		// read bytes from body
		body, err := io.ReadAll(io.LimitReader(r.Body, utils.MaxBodyBytes))
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			h.writeError(w, r, err)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req models.PushRequest
		if err = json.Unmarshal(body, &req); err != nil {
			log.Err(err).Msg("failed to decode JSON")
			h.writeError(w, r, service.ErrInvalidDataProvided)
			return
		}
		if err = h.validator.Validate(ctx, req); err != nil {
			log.Err(err).Msg("invalid push envelope")
			h.writeError(w, r, service.ErrInvalidDataProvided)
			return
		}

		// the hash covers the records exactly as the client marshals them
		payload, err := json.Marshal(req.Records)
		if err != nil {
			log.Err(err).Msg("failed to marshal records")
			h.writeError(w, r, err)
			return
		}

		key, err := h.services.HubService.RoomKey(ctx, roomID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if !utils.VerifyHash(payload, req.Hash, key) {
			log.Error().Str("hash from request", req.Hash).Msg("hashes are not equal")
			h.writeError(w, r, service.ErrHashMismatch)
			return
		}

		log.Debug().Int("records", len(req.Records)).Msg("hashes are equal")
		next.ServeHTTP(w, r)
	})
}
