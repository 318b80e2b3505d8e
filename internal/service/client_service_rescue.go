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

type clientRescueService struct {
	replicas  ReplicaService
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientRescueService(replicas ReplicaService, validator validators.Validator, logger *logger.Logger) RescueService {
	return &clientRescueService{
		replicas:  replicas,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

// Report queues a rescue report timestamped now.
func (s *clientRescueService) Report(ctx context.Context, report models.RescueReport) (models.RescueReport, error) {
	now := s.now()
	if report.ID == "" {
		report.ID = newRecordID("rescue", now)
	}
	if report.Status == "" {
		report.Status = models.RescueNeedHelp
	}
	report.Note = strings.TrimSpace(report.Note)
	report.TS = relay.FormatTimestamp(now)

	if err := s.validator.Validate(ctx, report); err != nil {
		return models.RescueReport{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	rec, err := encodeRecord(report)
	if err != nil {
		return models.RescueReport{}, err
	}
	res, err := s.replicas.Edit(ctx, models.LocalNamespace, models.Rescue, rec)
	if err != nil {
		return models.RescueReport{}, err
	}
	if report, err = savedAs[models.RescueReport](res, report.ID); err != nil {
		return models.RescueReport{}, err
	}

	s.logger.Info().Str("func", "clientRescueService.Report").Str("report_id", report.ID).
		Int("people", report.People).Int("injured", report.Injured).Msg("rescue report queued")
	return report, nil
}

// List returns the reports, newest first.
func (s *clientRescueService) List(ctx context.Context) ([]models.RescueReport, error) {
	replica, err := s.replicas.Load(ctx, models.LocalNamespace, models.Rescue)
	if err != nil {
		return nil, err
	}
	reports, err := decodeReplica[models.RescueReport](replica)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(reports, func(a, b models.RescueReport) int {
		return cmp.Or(relay.CompareTimestamps(b.TS, a.TS), strings.Compare(a.ID, b.ID))
	})
	return reports, nil
}
