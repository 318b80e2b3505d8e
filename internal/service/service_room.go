package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sos-relay/internal/crypto"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

type roomService struct {
	rooms     store.RoomStore
	cipher    crypto.RoomCipher
	validator validators.Validator

	// preset is used instead of a generated room on first use.
	preset models.Room

	logger *logger.Logger
}

func NewRoomService(rooms store.RoomStore, cipher crypto.RoomCipher, validator validators.Validator, preset models.Room, logger *logger.Logger) RoomService {
	return &roomService{
		rooms:     rooms,
		cipher:    cipher,
		validator: validator,
		preset:    preset,
		logger:    logger,
	}
}

func (s *roomService) Current(ctx context.Context) (models.Room, error) {
	room, err := s.rooms.CurrentRoom(ctx)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, store.ErrRoomNotFound) {
		return models.Room{}, fmt.Errorf("load current room: %w", err)
	}

	if s.preset.Valid() {
		if err = s.Join(ctx, s.preset); err != nil {
			return models.Room{}, err
		}
		return s.preset, nil
	}
	return s.Regenerate(ctx)
}

func (s *roomService) Regenerate(ctx context.Context) (models.Room, error) {
	room, err := s.cipher.NewRoom()
	if err != nil {
		return models.Room{}, fmt.Errorf("generate room: %w", err)
	}
	if err = s.rooms.SaveRoom(ctx, room); err != nil {
		return models.Room{}, fmt.Errorf("save room: %w", err)
	}

	s.logger.Info().Str("func", "roomService.Regenerate").Str("room_id", room.ID).Msg("new room generated")
	return room, nil
}

func (s *roomService) Join(ctx context.Context, room models.Room) error {
	if err := s.validator.Validate(ctx, room); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.rooms.SaveRoom(ctx, room); err != nil {
		return fmt.Errorf("save room: %w", err)
	}

	s.logger.Info().Str("func", "roomService.Join").Str("room_id", room.ID).Msg("joined room")
	return nil
}
