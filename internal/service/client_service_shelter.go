// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

// MineRadiusMeters is how close a shelter must be to be marked as mine
// instead of creating a new one.
const MineRadiusMeters = 500.0

const myShelterName = "My shelter"

// defaultShelters are stored on first run so the registry is never empty.
var defaultShelters = []models.Shelter{
	{ID: "kalix_church", Name: "Kalix Church", Status: models.ShelterOpen, Capacity: 80, Lat: 65.85300, Lon: 23.15600, Notes: "Generator, water, Bibles."},
	{ID: "morjarv_school", Name: "Morjärv School", Status: models.ShelterUnknown, Capacity: 120, Lat: 66.04540, Lon: 23.05980, Notes: "Assemble at main entrance."},
}

type clientShelterService struct {
	replicas  ReplicaService
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientShelterService(replicas ReplicaService, validator validators.Validator, logger *logger.Logger) ShelterService {
	return &clientShelterService{
		replicas:  replicas,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientShelterService) Add(ctx context.Context, shelter models.Shelter) (models.Shelter, error) {
	shelter.Name = strings.TrimSpace(shelter.Name)
	if shelter.Name == "" {
		return models.Shelter{}, ErrNoShelterName
	}

	now := s.now()
	if shelter.ID == "" {
		shelter.ID = newRecordID(shelter.Name, now)
	}
	if shelter.Status == "" {
		shelter.Status = models.ShelterUnknown
	}
	shelter.TS = relay.FormatTimestamp(now)

	return s.save(ctx, shelter)
}

func (s *clientShelterService) List(ctx context.Context, status models.ShelterStatus) ([]models.Shelter, error) {
	shelters, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	if status != "" {
		shelters = slices.DeleteFunc(shelters, func(sh models.Shelter) bool { return sh.Status != status })
	}
	slices.SortFunc(shelters, func(a, b models.Shelter) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ID, b.ID))
	})
	return shelters, nil
}

func (s *clientShelterService) Delete(ctx context.Context, id string) error {
	n, err := s.replicas.Delete(ctx, models.LocalNamespace, models.Shelters, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return nil
}

func (s *clientShelterService) SeedDefaults(ctx context.Context) (bool, error) {
	replica, err := s.replicas.Load(ctx, models.LocalNamespace, models.Shelters)
	if err != nil {
		return false, err
	}
	if len(replica) > 0 {
		return false, nil
	}

	stamp := relay.FormatTimestamp(s.now())
	records := make([]models.Record, 0, len(defaultShelters))
	for _, shelter := range defaultShelters {
		shelter.TS = stamp
		rec, err := encodeRecord(shelter)
		if err != nil {
			return false, err
		}
		records = append(records, rec)
	}

	if _, err = s.replicas.Edit(ctx, models.LocalNamespace, models.Shelters, records...); err != nil {
		return false, err
	}

	s.logger.Info().Str("func", "clientShelterService.SeedDefaults").Int("count", len(records)).Msg("default shelters stored")
	return true, nil
}

func (s *clientShelterService) MarkNearestAsMine(ctx context.Context, lat, lon float64, id string) (models.Shelter, error) {
	if err := s.validator.Validate(ctx, models.Shelter{Lat: lat, Lon: lon}, validators.FieldCoordinates); err != nil {
		return models.Shelter{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	shelters, err := s.all(ctx)
	if err != nil {
		return models.Shelter{}, err
	}

	best, bestDist := -1, MineRadiusMeters
	for i, sh := range shelters {
		if d := utils.HaversineMeters(lat, lon, sh.Lat, sh.Lon); d < bestDist {
			best, bestDist = i, d
		}
	}

	now := s.now()
	var mine models.Shelter
	if best >= 0 {
		mine = shelters[best]
	} else {
		if id = strings.TrimSpace(id); id == "" {
			id = newRecordID(myShelterName, now)
		}
		mine = models.Shelter{
			ID:     id,
			Name:   myShelterName,
			Status: models.ShelterUnknown,
			Lat:    lat,
			Lon:    lon,
		}
	}
	mine.Mine = true
	mine.TS = relay.FormatTimestamp(now)

	if mine, err = s.save(ctx, mine); err != nil {
		return models.Shelter{}, err
	}

	s.logger.Info().Str("func", "clientShelterService.MarkNearestAsMine").
		Str("shelter_id", mine.ID).Bool("created", best < 0).Msg("shelter marked as mine")
	return mine, nil
}

func (s *clientShelterService) all(ctx context.Context) ([]models.Shelter, error) {
	replica, err := s.replicas.Load(ctx, models.LocalNamespace, models.Shelters)
	if err != nil {
		return nil, err
	}
	return decodeReplica[models.Shelter](replica)
}

// save stores shelter and returns it as saved.
func (s *clientShelterService) save(ctx context.Context, shelter models.Shelter) (models.Shelter, error) {
	if err := s.validator.Validate(ctx, shelter); err != nil {
		return models.Shelter{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	rec, err := encodeRecord(shelter)
	if err != nil {
		return models.Shelter{}, err
	}
	res, err := s.replicas.Edit(ctx, models.LocalNamespace, models.Shelters, rec)
	if err != nil {
		return models.Shelter{}, err
	}
	return savedAs[models.Shelter](res, shelter.ID)
}
