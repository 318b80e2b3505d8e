package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrUnauthorizedAccessToDifferentRoom = errors.New("unauthorized access to a different room")
	ErrRoomKeyMismatch                   = errors.New("room is registered with another key")
	ErrNoRoomIDProvided                  = errors.New("no room ID provided")

	ErrUnknownCollection      = errors.New("unknown collection")
	ErrCollectionNotRelayable = errors.New("collection cannot be relayed over QR")
	ErrRecordNotFound         = errors.New("record not found")
	ErrHashMismatch           = errors.New("hash mismatch")
	ErrHubDisabled            = errors.New("hub address is not configured")
	ErrNoShelterName          = errors.New("shelter name is required")
	ErrNoMessageGroup         = errors.New("message group is required")
)
