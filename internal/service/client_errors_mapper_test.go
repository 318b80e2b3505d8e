package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-sos-relay/internal/adapter"
	"github.com/MKhiriev/go-sos-relay/internal/app"
	"github.com/MKhiriev/go-sos-relay/internal/store"
)

func TestMapAdapterError(t *testing.T) {
	wrap := func(sentinel error, msg string) error { return fmt.Errorf("%w: %s", sentinel, msg) }
	other := errors.New("dial tcp: refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"invalid data", wrap(adapter.ErrBadRequest, app.MsgInvalidDataProvided), ErrInvalidDataProvided},
		{"unknown collection", wrap(adapter.ErrBadRequest, app.MsgUnknownCollection), ErrUnknownCollection},
		{"hash mismatch", wrap(adapter.ErrBadRequest, app.MsgHashMismatch), ErrHashMismatch},
		{"not relayable", wrap(adapter.ErrBadRequest, app.MsgCollectionNotRelayable), ErrCollectionNotRelayable},
		{"expired", wrap(adapter.ErrUnauthorized, app.MsgTokenIsExpired), ErrTokenIsExpired},
		{"invalid token", wrap(adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid), ErrTokenIsExpiredOrInvalid},
		{"forbidden", wrap(adapter.ErrForbidden, app.MsgAccessDenied), ErrUnauthorizedAccessToDifferentRoom},
		{"room not found", wrap(adapter.ErrNotFound, app.MsgRoomNotFound), store.ErrRoomNotFound},
		{"record not found", wrap(adapter.ErrNotFound, app.MsgRecordNotFound), ErrRecordNotFound},
		{"conflict", wrap(adapter.ErrConflict, app.MsgRoomKeyMismatch), ErrRoomKeyMismatch},
		{"unknown bad request passes through", wrap(adapter.ErrBadRequest, "teapot"), adapter.ErrBadRequest},
		{"transport error passes through", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
