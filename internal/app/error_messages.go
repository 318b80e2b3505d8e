// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// hub handlers, the middleware and the client's hub adapter.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. The client maps them back to service errors, so the
// wording must stay identical on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a bearer token is well formed but
	// its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified against the key of the room it claims.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoRoomIDProvided is returned when a route requires a room but none
	// is present in the path or the token.
	MsgNoRoomIDProvided = "no room ID provided"

	// MsgAccessDenied is returned when a token of one room is used on the
	// routes of another.
	MsgAccessDenied = "access denied"

	// MsgRoomNotFound is returned when the room was never registered.
	MsgRoomNotFound = "room not found"

	// MsgRoomKeyMismatch is returned when a room id is registered again with
	// a different key.
	MsgRoomKeyMismatch = "room already registered with another key"

	// MsgUnknownCollection is returned for a collection name the hub does
	// not keep.
	MsgUnknownCollection = "unknown collection"

	// MsgCollectionNotRelayable is returned when a QR export or import is
	// requested for a collection without a relay protocol.
	MsgCollectionNotRelayable = "collection cannot be relayed over QR"

	// MsgRecordNotFound is returned when a single-record export names a key
	// the replica does not hold.
	MsgRecordNotFound = "record not found"

	// MsgHashMismatch is returned when a push body does not match the hash
	// it was sent with.
	MsgHashMismatch = "hash mismatch"

	// MsgEmptyQRText is returned when a QR rendering request carries no text.
	MsgEmptyQRText = "empty QR text"
)
