package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/models"
)

// roomRepository is the SQL implementation of [RoomStore].
type roomRepository struct {
	*DB
	now func() time.Time
}

func NewRoomRepository(db *DB) RoomStore {
	return &roomRepository{DB: db, now: time.Now}
}

func (r *roomRepository) CreateRoom(ctx context.Context, room models.Room) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildCreateRoomQuery(room.ID, room.Key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if isUniqueViolation(err) {
		log.Warn().
			Str("func", "roomRepository.CreateRoom").
			Str("room_id", room.ID).
			Msg("room already exists")
		return ErrRoomAlreadyExists
	}
	if err != nil {
		log.Err(err).
			Str("func", "roomRepository.CreateRoom").
			Str("room_id", room.ID).
			Msg("failed to create room")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *roomRepository) SaveRoom(ctx context.Context, room models.Room) error {
	query, args, err := r.buildSaveRoomQuery(room.ID, room.Key, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "roomRepository.SaveRoom").
			Str("room_id", room.ID).
			Msg("failed to save room")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *roomRepository) GetRoom(ctx context.Context, roomID string) (models.Room, error) {
	query, args, err := r.buildGetRoomQuery(roomID)
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.scanRoom(ctx, "roomRepository.GetRoom", query, args...)
}

func (r *roomRepository) CurrentRoom(ctx context.Context) (models.Room, error) {
	query, args, err := r.buildCurrentRoomQuery()
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.scanRoom(ctx, "roomRepository.CurrentRoom", query, args...)
}

func (r *roomRepository) scanRoom(ctx context.Context, funcName, query string, args ...any) (models.Room, error) {
	var room models.Room

	err := r.DB.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.Key)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Room{}, ErrRoomNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Msg("failed to query room")
		return models.Room{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return room, nil
}
