// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-sos-relay/internal/adapter"
	"github.com/MKhiriev/go-sos-relay/internal/app"
	"github.com/MKhiriev/go-sos-relay/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgUnknownCollection:
			return ErrUnknownCollection
		case app.MsgHashMismatch:
			return ErrHashMismatch
		case app.MsgNoRoomIDProvided:
			return ErrNoRoomIDProvided
		case app.MsgCollectionNotRelayable:
			return ErrCollectionNotRelayable
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		return ErrUnauthorizedAccessToDifferentRoom

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgRecordNotFound:
			return ErrRecordNotFound
		default:
			return store.ErrRoomNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		return ErrRoomKeyMismatch
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
