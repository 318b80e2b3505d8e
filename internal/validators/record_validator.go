package validators

import (
	"context"
	"fmt"
	"math"
	"regexp"

	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID          = "id"
	FieldTimestamp   = "ts"
	FieldName        = "name"
	FieldStatus      = "status"
	FieldCapacity    = "capacity"
	FieldCoordinates = "coordinates"
	FieldPeople      = "people"
	FieldGroup       = "group"
	FieldBody        = "body"
	FieldRoom        = "room"
	FieldHash        = "hash"
	FieldLength      = "length"
	FieldItem        = "item"
)

const maxIDLength = 128

var (
	// roomIDPattern matches ids generated by crypto.RoomCipher.NewRoom.
	roomIDPattern = regexp.MustCompile(`^room_[0-9a-z]{6}$`)
	hashPattern   = regexp.MustCompile(`^[0-9a-f]{64}$`)
)

// RecordValidator validates the typed records of every collection and the
// payloads accepted by the hub. Both value and pointer forms are accepted.
type RecordValidator struct{}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Shelter:
		return v.validateShelter(value, fields...)
	case *models.Shelter:
		return v.validateShelter(*value, fields...)

	case models.RescueReport:
		return v.validateRescueReport(value, fields...)
	case *models.RescueReport:
		return v.validateRescueReport(*value, fields...)

	case models.FamilyMember:
		return v.validateFamilyMember(value, fields...)
	case *models.FamilyMember:
		return v.validateFamilyMember(*value, fields...)

	case models.Message:
		return v.validateMessage(value, fields...)
	case *models.Message:
		return v.validateMessage(*value, fields...)

	case models.Patient:
		return v.validatePatient(value, fields...)
	case *models.Patient:
		return v.validatePatient(*value, fields...)

	case models.Supply:
		return v.validateSupply(value, fields...)
	case *models.Supply:
		return v.validateSupply(*value, fields...)

	case models.Room:
		return v.validateRoom(value, fields...)
	case *models.Room:
		return v.validateRoom(*value, fields...)

	case models.PushRequest:
		return v.validatePushRequest(ctx, value, fields...)
	case *models.PushRequest:
		return v.validatePushRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validID(id string) bool {
	return id != "" && len(id) <= maxIDLength
}

// validTimestamp accepts an empty timestamp; merge treats it as the earliest
// instant.
func validTimestamp(ts string) bool {
	if ts == "" {
		return true
	}
	_, ok := relay.ParseTimestamp(ts)
	return ok
}

func (v *RecordValidator) validateShelter(s models.Shelter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTimestamp, FieldName, FieldStatus, FieldCapacity, FieldCoordinates}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !validID(s.ID) {
				return ErrInvalidID
			}
		case FieldTimestamp:
			if !validTimestamp(s.TS) {
				return ErrInvalidTimestamp
			}
		case FieldName:
			if s.Name == "" {
				return ErrEmptyName
			}
		case FieldStatus:
			if !s.Status.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, s.Status)
			}
		case FieldCapacity:
			if s.Capacity < 0 {
				return ErrInvalidCapacity
			}
		case FieldCoordinates:
			if math.IsNaN(s.Lat) || math.IsNaN(s.Lon) || math.Abs(s.Lat) > 90 || math.Abs(s.Lon) > 180 {
				return ErrInvalidCoordinates
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateRescueReport(r models.RescueReport, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTimestamp, FieldPeople, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !validID(r.ID) {
				return ErrInvalidID
			}
		case FieldTimestamp:
			if !validTimestamp(r.TS) {
				return ErrInvalidTimestamp
			}
		case FieldPeople:
			if r.People < 0 || r.Injured < 0 || r.Injured > r.People {
				return ErrInvalidPeopleCount
			}
		case FieldStatus:
			if !r.Status.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, r.Status)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateFamilyMember(m models.FamilyMember, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTimestamp, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !validID(m.ID) {
				return ErrInvalidID
			}
		case FieldTimestamp:
			if !validTimestamp(m.TS) || !validTimestamp(m.LastSeen) {
				return ErrInvalidTimestamp
			}
		case FieldName:
			if m.Name == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateMessage(m models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTimestamp, FieldGroup, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !validID(m.ID) {
				return ErrInvalidID
			}
		case FieldTimestamp:
			if !validTimestamp(m.TS) {
				return ErrInvalidTimestamp
			}
		case FieldGroup:
			if m.Group == "" {
				return ErrEmptyGroup
			}
		case FieldBody:
			if m.Body == "" {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validatePatient(p models.Patient, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTimestamp, FieldName, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !validID(p.ID) {
				return ErrInvalidID
			}
		case FieldTimestamp:
			if !validTimestamp(p.TS) {
				return ErrInvalidTimestamp
			}
		case FieldName:
			if p.Name == "" {
				return ErrEmptyName
			}
		case FieldStatus:
			if !p.Status.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, p.Status)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateSupply(s models.Supply, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTimestamp, FieldItem}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !validID(s.ID) {
				return ErrInvalidID
			}
		case FieldTimestamp:
			if !validTimestamp(s.TS) {
				return ErrInvalidTimestamp
			}
		case FieldItem:
			if s.Item == "" {
				return ErrEmptyItem
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateRoom(r models.Room, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRoom}
	}

	for _, f := range fields {
		switch f {
		case FieldRoom:
			if !roomIDPattern.MatchString(r.ID) || len(r.Key) < 16 {
				return ErrInvalidRoom
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePushRequest checks the envelope of a push. The hash itself is
// verified against the room key by the hub middleware.
func (v *RecordValidator) validatePushRequest(_ context.Context, req models.PushRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHash, FieldLength, FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldHash:
			if !hashPattern.MatchString(req.Hash) {
				return ErrInvalidHash
			}
		case FieldLength:
			if req.Length != len(req.Records) {
				return ErrLengthMismatch
			}
		case FieldID:
			for i, rec := range req.Records {
				if !validID(rec.Key) {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidID)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
