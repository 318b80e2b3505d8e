package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
)

// auth is an HTTP middleware that enforces room token authentication.
//
// The bearer token must be an HS256 JWT whose subject is the room id of the
// request path, signed with the key that room was registered with. On
// success the room id is stored in the request context under
// [utils.RoomIDCtxKey].
//
// Rejections:
//   - 401 when the header is missing or malformed, or the token is expired
//     or does not verify.
//   - 404 when the token names a room the hub does not know, so the client
//     registers again.
//   - 403 when the token is valid for a different room than the path.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			h.writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, func(roomID string) (string, error) {
			return h.services.HubService.RoomKey(ctx, roomID)
		}, h.tokenIssuer)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrRoomNotFound):
				log.Err(err).Msg("token of an unknown room")
				h.writeError(w, r, store.ErrRoomNotFound)
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				h.writeError(w, r, service.ErrTokenIsExpired)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				h.writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			}
			return
		}

		if pathRoomID := chi.URLParam(r, "roomID"); pathRoomID != token.RoomID {
			log.Warn().Str("token_room_id", token.RoomID).Str("path_room_id", pathRoomID).Msg("token used for another room")
			h.writeError(w, r, service.ErrUnauthorizedAccessToDifferentRoom)
			return
		}

		ctx = context.WithValue(ctx, utils.RoomIDCtxKey, token.RoomID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
