package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sos-relay/models"
)

// ValidateRecord decodes rec into the typed model of collection and runs v
// over it, restricted to fields when any are given.
func ValidateRecord(ctx context.Context, v Validator, collection models.Collection, rec models.Record, fields ...string) error {
	var target any
	switch collection.Name {
	case models.Shelters.Name:
		target = &models.Shelter{}
	case models.Rescue.Name:
		target = &models.RescueReport{}
	case models.Family.Name:
		target = &models.FamilyMember{}
	case models.Messages.Name:
		target = &models.Message{}
	case models.Patients.Name:
		target = &models.Patient{}
	case models.Supplies.Name:
		target = &models.Supply{}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection.Name)
	}

	if err := models.DecodeRecord(rec, target); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	return v.Validate(ctx, target, fields...)
}
