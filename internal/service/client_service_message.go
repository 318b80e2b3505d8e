package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/crypto"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

type clientMessageService struct {
	replicas  ReplicaService
	rooms     RoomService
	cipher    crypto.RoomCipher
	validator validators.Validator
	author    string
	now       func() time.Time

	logger *logger.Logger
}

// NewClientMessageService creates the local messaging service. author is
// written into every composed message.
func NewClientMessageService(replicas ReplicaService, rooms RoomService, cipher crypto.RoomCipher, validator validators.Validator, author string, logger *logger.Logger) MessageService {
	return &clientMessageService{
		replicas:  replicas,
		rooms:     rooms,
		cipher:    cipher,
		validator: validator,
		author:    author,
		now:       time.Now,
		logger:    logger,
	}
}

// Compose stores a new message for group. With encrypt set the body is
// sealed with the current room key, so only devices of the room can read it.
func (s *clientMessageService) Compose(ctx context.Context, group, body string, encrypt bool) (models.Message, error) {
	group = strings.TrimSpace(group)
	if group == "" {
		return models.Message{}, ErrNoMessageGroup
	}

	now := s.now()
	msg := models.Message{
		ID:     newRecordID("msg", now),
		TS:     relay.FormatTimestamp(now),
		Group:  group,
		Author: s.author,
		Body:   strings.TrimSpace(body),
	}
	if err := s.validator.Validate(ctx, msg); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if encrypt {
		room, err := s.rooms.Current(ctx)
		if err != nil {
			return models.Message{}, err
		}
		sealed, err := s.cipher.Seal(msg.Body, room.Key)
		if err != nil {
			return models.Message{}, fmt.Errorf("seal message: %w", err)
		}
		msg.Body = sealed
		msg.Encrypted = true
	}

	rec, err := encodeRecord(msg)
	if err != nil {
		return models.Message{}, err
	}
	if _, err = s.replicas.Edit(ctx, models.LocalNamespace, models.Messages, rec); err != nil {
		return models.Message{}, err
	}

	s.logger.Debug().Str("func", "clientMessageService.Compose").Str("group", group).Bool("encrypted", encrypt).Msg("message stored")
	return msg, nil
}

func (s *clientMessageService) List(ctx context.Context, group string) ([]models.Message, error) {
	messages, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	if group != "" {
		messages = slices.DeleteFunc(messages, func(m models.Message) bool { return m.Group != group })
	}
	slices.SortFunc(messages, func(a, b models.Message) int {
		return cmp.Or(relay.CompareTimestamps(a.TS, b.TS), strings.Compare(a.ID, b.ID))
	})
	return messages, nil
}

func (s *clientMessageService) Reveal(ctx context.Context, msg models.Message) (string, error) {
	if !msg.Encrypted {
		return msg.Body, nil
	}
	room, err := s.rooms.Current(ctx)
	if err != nil {
		return "", err
	}
	body, err := s.cipher.Open(msg.Body, room.Key)
	if err != nil {
		return "", fmt.Errorf("open message %s: %w", msg.ID, err)
	}
	return body, nil
}

// UnsentCount returns how many messages have not reached the hub yet.
func (s *clientMessageService) UnsentCount(ctx context.Context) (int, error) {
	messages, err := s.all(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range messages {
		if !m.Synced {
			n++
		}
	}
	return n, nil
}

// MarkSynced flags the unsent messages among ids as delivered to the hub.
// Messages composed after the push are not among ids and stay unsent.
func (s *clientMessageService) MarkSynced(ctx context.Context, ids ...string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	messages, err := s.all(ctx)
	if err != nil {
		return 0, err
	}

	records := make([]models.Record, 0, len(ids))
	for _, m := range messages {
		if m.Synced || !slices.Contains(ids, m.ID) {
			continue
		}
		// Edit restamps the flagged copy past the stored one
		m.Synced = true
		m.TS = ""
		rec, err := encodeRecord(m)
		if err != nil {
			return 0, err
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return 0, nil
	}

	res, err := s.replicas.Edit(ctx, models.LocalNamespace, models.Messages, records...)
	if err != nil {
		return 0, err
	}
	return res.Changed, nil
}

func (s *clientMessageService) all(ctx context.Context) ([]models.Message, error) {
	replica, err := s.replicas.Load(ctx, models.LocalNamespace, models.Messages)
	if err != nil {
		return nil, err
	}
	return decodeReplica[models.Message](replica)
}
