package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

type hubService struct {
	rooms     store.RoomStore
	replicas  ReplicaService
	exports   ExportService
	imports   ImportService
	validator validators.Validator

	logger *logger.Logger
}

func NewHubService(rooms store.RoomStore, replicas ReplicaService, exports ExportService, imports ImportService, validator validators.Validator, logger *logger.Logger) HubService {
	return &hubService{
		rooms:     rooms,
		replicas:  replicas,
		exports:   exports,
		imports:   imports,
		validator: validator,
		logger:    logger,
	}
}

func (s *hubService) RegisterRoom(ctx context.Context, room models.Room) (bool, error) {
	log := s.logger.With().Str("func", "hubService.RegisterRoom").Str("room_id", room.ID).Logger()

	if err := s.validator.Validate(ctx, room); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	err := s.rooms.CreateRoom(ctx, room)
	if err == nil {
		log.Info().Msg("room registered")
		return true, nil
	}
	if !errors.Is(err, store.ErrRoomAlreadyExists) {
		return false, err
	}

	existing, err := s.rooms.GetRoom(ctx, room.ID)
	if err != nil {
		return false, err
	}
	if existing.Key != room.Key {
		log.Warn().Msg("room registered again with another key")
		return false, ErrRoomKeyMismatch
	}
	return false, nil
}

func (s *hubService) RoomKey(ctx context.Context, roomID string) (string, error) {
	if roomID == "" {
		return "", ErrNoRoomIDProvided
	}
	room, err := s.rooms.GetRoom(ctx, roomID)
	if err != nil {
		return "", err
	}
	return room.Key, nil
}

func (s *hubService) Pull(ctx context.Context, roomID string, collection models.Collection) ([]models.Record, error) {
	replica, err := s.replicas.Load(ctx, roomID, collection)
	if err != nil {
		return nil, err
	}
	return replica.Records(), nil
}

// Push merges records into the room's replica. Records that fail validation
// are counted as discarded.
func (s *hubService) Push(ctx context.Context, roomID string, collection models.Collection, records []models.Record) (models.MergeReport, error) {
	log := s.logger.With().Str("func", "hubService.Push").Str("room_id", roomID).Str("collection", collection.Name).Logger()

	incoming, invalid := validRecords(ctx, s.validator, collection, records)
	if invalid > 0 {
		log.Warn().Int("invalid", invalid).Msg("invalid records discarded")
	}

	merged, err := s.replicas.Merge(ctx, roomID, collection, incoming)
	if err != nil {
		return models.MergeReport{}, err
	}

	report := models.MergeReport{
		Accepted:  merged.Accepted,
		Discarded: merged.Discarded + len(records) - len(incoming),
	}
	log.Info().Int("accepted", report.Accepted).Int("discarded", report.Discarded).Msg("push merged")
	return report, nil
}

func (s *hubService) Export(ctx context.Context, roomID string, collection models.Collection, key string) (models.ExportResponse, error) {
	return s.exports.Export(ctx, roomID, collection, key)
}

func (s *hubService) Import(ctx context.Context, roomID string, collection models.Collection, text string) (models.ImportResult, error) {
	return s.imports.Import(ctx, roomID, collection, text)
}

// validRecords reduces records to one per key and drops those that fail the
// structural check. invalid counts the dropped records.
func validRecords(ctx context.Context, v validators.Validator, collection models.Collection, records []models.Record) (models.Replica, int) {
	valid := make([]models.Record, 0, len(records))
	invalid := 0
	for _, rec := range records {
		if err := validators.ValidateRecord(ctx, v, collection, rec, structuralFields...); err != nil {
			invalid++
			continue
		}
		valid = append(valid, rec)
	}
	return relay.Reduce(valid), invalid
}
