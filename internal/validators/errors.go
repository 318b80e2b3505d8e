package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("invalid record id")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidCapacity    = errors.New("capacity cannot be negative")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrInvalidPeopleCount = errors.New("invalid people count")
	ErrEmptyGroup         = errors.New("group is required")
	ErrEmptyBody          = errors.New("message body is required")
	ErrEmptyItem          = errors.New("supply item is required")
	ErrInvalidRoom        = errors.New("invalid room")
	ErrInvalidHash        = errors.New("invalid hash")
	ErrLengthMismatch     = errors.New("length does not match records count")
	ErrUnknownCollection  = errors.New("unknown collection")
)
