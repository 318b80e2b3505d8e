package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

type importService struct {
	replicas  ReplicaService
	sessions  *relay.Sessions
	validator validators.Validator

	logger *logger.Logger
}

func NewImportService(replicas ReplicaService, sessions *relay.Sessions, validator validators.Validator, logger *logger.Logger) ImportService {
	return &importService{
		replicas:  replicas,
		sessions:  sessions,
		validator: validator,
		logger:    logger,
	}
}

func (s *importService) Import(ctx context.Context, namespace string, collection models.Collection, text string) (models.ImportResult, error) {
	log := s.logger.With().Str("func", "importService.Import").Str("collection", collection.Name).Logger()

	if !collection.Relayable() {
		return rejected(fmt.Errorf("%w: %s", ErrCollectionNotRelayable, collection.Name)), nil
	}

	chunk, err := relay.Decode(text, collection.Protocol)
	if err != nil {
		log.Warn().Err(err).Msg("scanned payload rejected")
		return rejected(err), nil
	}

	acc, err := s.sessions.Accumulate(chunk)
	if err != nil {
		log.Warn().Err(err).Str("transfer_id", chunk.TransferID).Msg("chunk rejected")
		return rejected(err), nil
	}

	res := models.ImportResult{
		TransferID: acc.TransferID,
		Received:   acc.Received,
		Expected:   acc.Expected,
	}
	switch {
	case acc.Duplicate:
		res.Status = models.ImportDuplicate
		return res, nil
	case !acc.Complete:
		res.Status = models.ImportInProgress
		log.Debug().Str("transfer_id", acc.TransferID).Int("received", acc.Received).Int("expected", acc.Expected).Msg("part recorded")
		return res, nil
	}

	valid := make(models.Replica, len(acc.Collection))
	invalid := 0
	for key, rec := range acc.Collection {
		rec.Key = key
		if err = validators.ValidateRecord(ctx, s.validator, collection, rec, structuralFields...); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("invalid record discarded")
			invalid++
			continue
		}
		valid[key] = rec
	}

	merged, err := s.replicas.Merge(ctx, namespace, collection, valid)
	if err != nil {
		// nothing was stored: let the same codes complete the transfer later
		s.sessions.Forget(acc.TransferID)
		return models.ImportResult{}, fmt.Errorf("merge transfer %s: %w", acc.TransferID, err)
	}

	res.Status = models.ImportCompleted
	res.Accepted = merged.Accepted
	res.Discarded = merged.Discarded + invalid

	log.Info().Str("transfer_id", acc.TransferID).Int("accepted", res.Accepted).Int("discarded", res.Discarded).Msg("transfer merged")
	return res, nil
}

func (s *importService) Progress(transferID string) (received, expected int, ok bool) {
	return s.sessions.Progress(transferID)
}

func (s *importService) Cancel(transferID string) bool {
	return s.sessions.Cancel(transferID)
}

func (s *importService) Expire(ttl time.Duration) int {
	return s.sessions.Expire(ttl)
}

func rejected(err error) models.ImportResult {
	return models.ImportResult{Status: models.ImportRejected, Reason: err.Error()}
}
