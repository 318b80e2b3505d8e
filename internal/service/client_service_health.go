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

type clientHealthService struct {
	replicas  ReplicaService
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientHealthService(replicas ReplicaService, validator validators.Validator, logger *logger.Logger) HealthService {
	return &clientHealthService{
		replicas:  replicas,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientHealthService) AddPatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	patient.Name = strings.TrimSpace(patient.Name)
	patient.Injury = strings.TrimSpace(patient.Injury)
	patient.Notes = strings.TrimSpace(patient.Notes)
	if patient.Status == "" {
		patient.Status = models.PatientSafe
	}
	now := s.now()
	if patient.ID == "" && patient.Name != "" {
		patient.ID = newRecordID(patient.Name, now)
	}
	patient.TS = relay.FormatTimestamp(now)

	return saveTyped(ctx, s, models.Patients, patient.ID, patient)
}

// CycleStatus moves a patient to the next triage status.
func (s *clientHealthService) CycleStatus(ctx context.Context, id string) (models.Patient, error) {
	replica, err := s.replicas.Load(ctx, models.LocalNamespace, models.Patients)
	if err != nil {
		return models.Patient{}, err
	}
	rec, ok := replica[id]
	if !ok {
		return models.Patient{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}

	var patient models.Patient
	if err = models.DecodeRecord(rec, &patient); err != nil {
		return models.Patient{}, err
	}
	patient.Status = patient.Status.Next()
	patient.TS = relay.FormatTimestamp(s.now())

	if patient, err = saveTyped(ctx, s, models.Patients, id, patient); err != nil {
		return models.Patient{}, err
	}

	s.logger.Info().Str("func", "clientHealthService.CycleStatus").Str("patient_id", id).Str("status", string(patient.Status)).Msg("triage updated")
	return patient, nil
}

func (s *clientHealthService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	replica, err := s.replicas.Load(ctx, models.LocalNamespace, models.Patients)
	if err != nil {
		return nil, err
	}
	patients, err := decodeReplica[models.Patient](replica)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(patients, func(a, b models.Patient) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ID, b.ID))
	})
	return patients, nil
}

func (s *clientHealthService) AddSupply(ctx context.Context, supply models.Supply) (models.Supply, error) {
	supply.Item = strings.TrimSpace(supply.Item)
	supply.Amount = strings.TrimSpace(supply.Amount)
	now := s.now()
	if supply.ID == "" && supply.Item != "" {
		supply.ID = newRecordID(supply.Item, now)
	}
	supply.TS = relay.FormatTimestamp(now)

	return saveTyped(ctx, s, models.Supplies, supply.ID, supply)
}

func (s *clientHealthService) ListSupplies(ctx context.Context) ([]models.Supply, error) {
	replica, err := s.replicas.Load(ctx, models.LocalNamespace, models.Supplies)
	if err != nil {
		return nil, err
	}
	supplies, err := decodeReplica[models.Supply](replica)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(supplies, func(a, b models.Supply) int {
		return cmp.Or(strings.Compare(a.Item, b.Item), strings.Compare(a.ID, b.ID))
	})
	return supplies, nil
}

func (s *clientHealthService) Delete(ctx context.Context, collection models.Collection, id string) error {
	if collection != models.Patients && collection != models.Supplies {
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, collection.Name)
	}
	n, err := s.replicas.Delete(ctx, models.LocalNamespace, collection, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return nil
}

// Report builds the health report of the shelter marked as mine.
func (s *clientHealthService) Report(ctx context.Context) (models.HealthReport, error) {
	patients, err := s.ListPatients(ctx)
	if err != nil {
		return models.HealthReport{}, err
	}
	supplies, err := s.ListSupplies(ctx)
	if err != nil {
		return models.HealthReport{}, err
	}

	report := models.HealthReport{
		GeneratedAt: s.now(),
		Patients:    patients,
		Supplies:    supplies,
		Counts:      make(map[models.PatientStatus]int, len(models.PatientStatuses)),
	}
	for _, p := range patients {
		report.Counts[p.Status]++
		report.LastUpdate = latest(report.LastUpdate, p.TS)
	}
	for _, sp := range supplies {
		report.LastUpdate = latest(report.LastUpdate, sp.TS)
	}

	shelters, err := s.replicas.Load(ctx, models.LocalNamespace, models.Shelters)
	if err != nil {
		return models.HealthReport{}, err
	}
	list, err := decodeReplica[models.Shelter](shelters)
	if err != nil {
		return models.HealthReport{}, err
	}
	for _, sh := range list {
		if sh.Mine {
			report.ShelterID, report.ShelterName = sh.ID, sh.Name
			break
		}
	}

	return report, nil
}

func latest(a, b string) string {
	if relay.CompareTimestamps(b, a) > 0 {
		return b
	}
	return a
}

// saveTyped validates v and stores it as a local edit of collection.
func saveTyped[T any](ctx context.Context, s *clientHealthService, collection models.Collection, id string, v T) (T, error) {
	var zero T
	if err := s.validator.Validate(ctx, v); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	rec, err := encodeRecord(v)
	if err != nil {
		return zero, err
	}
	res, err := s.replicas.Edit(ctx, models.LocalNamespace, collection, rec)
	if err != nil {
		return zero, err
	}
	return savedAs[T](res, id)
}
