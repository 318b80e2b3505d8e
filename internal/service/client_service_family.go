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
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

type clientFamilyService struct {
	replicas  ReplicaService
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientFamilyService(replicas ReplicaService, validator validators.Validator, logger *logger.Logger) FamilyService {
	return &clientFamilyService{
		replicas:  replicas,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientFamilyService) Add(ctx context.Context, member models.FamilyMember) (models.FamilyMember, error) {
	member.Name = strings.TrimSpace(member.Name)
	now := s.now()
	if member.ID == "" && member.Name != "" {
		member.ID = newRecordID(member.Name, now)
	}
	member.TS = relay.FormatTimestamp(now)
	member.LastSeen = member.TS

	return s.save(ctx, member)
}

// ToggleSafe flips the safe flag of a member and records that they were
// seen now.
func (s *clientFamilyService) ToggleSafe(ctx context.Context, id string) (models.FamilyMember, error) {
	replica, err := s.replicas.Load(ctx, models.LocalNamespace, models.Family)
	if err != nil {
		return models.FamilyMember{}, err
	}
	rec, ok := replica[id]
	if !ok {
		return models.FamilyMember{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}

	var member models.FamilyMember
	if err = models.DecodeRecord(rec, &member); err != nil {
		return models.FamilyMember{}, err
	}
	member.Safe = !member.Safe
	member.TS = relay.FormatTimestamp(s.now())
	member.LastSeen = member.TS

	if member, err = s.save(ctx, member); err != nil {
		return models.FamilyMember{}, err
	}

	s.logger.Info().Str("func", "clientFamilyService.ToggleSafe").Str("member_id", id).Bool("safe", member.Safe).Msg("check-in updated")
	return member, nil
}

func (s *clientFamilyService) List(ctx context.Context) ([]models.FamilyMember, error) {
	replica, err := s.replicas.Load(ctx, models.LocalNamespace, models.Family)
	if err != nil {
		return nil, err
	}
	members, err := decodeReplica[models.FamilyMember](replica)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(members, func(a, b models.FamilyMember) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ID, b.ID))
	})
	return members, nil
}

// save stores member and returns it as saved.
func (s *clientFamilyService) save(ctx context.Context, member models.FamilyMember) (models.FamilyMember, error) {
	if err := s.validator.Validate(ctx, member); err != nil {
		return models.FamilyMember{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	rec, err := encodeRecord(member)
	if err != nil {
		return models.FamilyMember{}, err
	}
	res, err := s.replicas.Edit(ctx, models.LocalNamespace, models.Family, rec)
	if err != nil {
		return models.FamilyMember{}, err
	}
	return savedAs[models.FamilyMember](res, member.ID)
}
