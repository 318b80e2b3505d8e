package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sos-relay/internal/app"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/qr"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
)

// errorReply is the status and the body message written for an error. The
// messages are matched verbatim by the client's hub adapter.
type errorReply struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorReply{
	service.ErrInvalidDataProvided:               {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrTokenIsExpired:                    {http.StatusUnauthorized, app.MsgTokenIsExpired},
	service.ErrTokenIsExpiredOrInvalid:           {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrUnauthorizedAccessToDifferentRoom: {http.StatusForbidden, app.MsgAccessDenied},
	service.ErrRoomKeyMismatch:                   {http.StatusConflict, app.MsgRoomKeyMismatch},
	service.ErrNoRoomIDProvided:                  {http.StatusBadRequest, app.MsgNoRoomIDProvided},
	service.ErrUnknownCollection:                 {http.StatusBadRequest, app.MsgUnknownCollection},
	service.ErrCollectionNotRelayable:            {http.StatusBadRequest, app.MsgCollectionNotRelayable},
	service.ErrRecordNotFound:                    {http.StatusNotFound, app.MsgRecordNotFound},
	service.ErrHashMismatch:                      {http.StatusBadRequest, app.MsgHashMismatch},

	qr.ErrEmptyText:   {http.StatusBadRequest, app.MsgEmptyQRText},
	qr.ErrUnencodable: {http.StatusBadRequest, app.MsgInvalidDataProvided},

	store.ErrRoomNotFound: {http.StatusNotFound, app.MsgRoomNotFound},
}

// replyFromError returns the status and message for err. Unknown errors,
// storage failures included, become 500 without leaking details.
func replyFromError(err error) (int, string) {
	for target, reply := range errorStatusMap {
		if errors.Is(err, target) {
			return reply.status, reply.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError writes the reply for err as {"error": message}.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := replyFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	}
	utils.WriteError(w, message, status)
}
