package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-sos-relay/internal/adapter"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

type clientHubSyncService struct {
	replicas  ReplicaService
	rooms     RoomService
	messages  MessageService
	hub       adapter.HubAdapter
	validator validators.Validator

	mu         sync.Mutex
	registered string

	logger *logger.Logger
}

// NewClientHubSyncService creates the online sync path. A nil hub disables
// it: every call fails with ErrHubDisabled.
func NewClientHubSyncService(replicas ReplicaService, rooms RoomService, messages MessageService, hub adapter.HubAdapter, validator validators.Validator, logger *logger.Logger) HubSyncService {
	return &clientHubSyncService{
		replicas:  replicas,
		rooms:     rooms,
		messages:  messages,
		hub:       hub,
		validator: validator,
		logger:    logger,
	}
}

// Sync exchanges every collection with the hub. It stops at the first
// failing collection and returns the reports gathered so far.
func (s *clientHubSyncService) Sync(ctx context.Context) ([]models.SyncReport, error) {
	reports := make([]models.SyncReport, 0, len(models.Collections))
	for _, collection := range models.Collections {
		report, err := s.SyncCollection(ctx, collection)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// SyncCollection pulls the hub's records of collection and merges them, then
// pushes every local record. The hub merges pushes under the same rules, so
// both sides converge.
func (s *clientHubSyncService) SyncCollection(ctx context.Context, collection models.Collection) (models.SyncReport, error) {
	log := s.logger.With().Str("func", "clientHubSyncService.SyncCollection").Str("collection", collection.Name).Logger()

	if s.hub == nil {
		return models.SyncReport{}, ErrHubDisabled
	}

	room, err := s.ensureRegistered(ctx)
	if err != nil {
		return models.SyncReport{}, err
	}

	report := models.SyncReport{Collection: collection.Name}

	pulled, err := s.hub.Pull(ctx, room, collection.Name)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, store.ErrRoomNotFound) {
			s.forgetRegistration()
		}
		return models.SyncReport{}, fmt.Errorf("pull %s: %w", collection.Name, err)
	}

	incoming, invalid := validRecords(ctx, s.validator, collection, pulled)
	if invalid > 0 {
		log.Warn().Int("invalid", invalid).Msg("invalid records from hub discarded")
	}
	merged, err := s.replicas.Merge(ctx, models.LocalNamespace, collection, incoming)
	if err != nil {
		return models.SyncReport{}, err
	}
	report.Pulled = models.MergeReport{Accepted: merged.Accepted, Discarded: merged.Discarded + len(pulled) - len(incoming)}

	local := merged.Replica
	if len(local) == 0 {
		log.Info().Int("pulled", report.Pulled.Accepted).Msg("collection synced")
		return report, nil
	}
	if report.Pushed, err = s.hub.Push(ctx, room, collection.Name, local.Records()); err != nil {
		return report, fmt.Errorf("push %s: %w", collection.Name, mapAdapterError(err))
	}

	// only what was pushed is delivered; later messages wait for the next sync
	if collection == models.Messages && s.messages != nil {
		if _, err = s.messages.MarkSynced(ctx, local.Keys()...); err != nil {
			return report, err
		}
	}

	log.Info().Int("pulled", report.Pulled.Accepted).Int("pushed", report.Pushed.Accepted).Msg("collection synced")
	return report, nil
}

// ensureRegistered registers the current room with the hub once per room.
func (s *clientHubSyncService) ensureRegistered(ctx context.Context) (models.Room, error) {
	room, err := s.rooms.Current(ctx)
	if err != nil {
		return models.Room{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registered == room.ID {
		return room, nil
	}
	if err = s.hub.RegisterRoom(ctx, room); err != nil {
		return models.Room{}, fmt.Errorf("register room %s: %w", room.ID, mapAdapterError(err))
	}
	s.registered = room.ID
	return room, nil
}

func (s *clientHubSyncService) forgetRegistration() {
	s.mu.Lock()
	s.registered = ""
	s.mu.Unlock()
}
