package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/models"
)

type exportService struct {
	replicas ReplicaService
	codec    *relay.Codec
	policy   relay.Policy

	logger *logger.Logger
}

func NewExportService(replicas ReplicaService, codec *relay.Codec, policy relay.Policy, logger *logger.Logger) ExportService {
	return &exportService{
		replicas: replicas,
		codec:    codec,
		policy:   policy,
		logger:   logger,
	}
}

func (s *exportService) Export(ctx context.Context, namespace string, collection models.Collection, key string) (models.ExportResponse, error) {
	log := s.logger.With().Str("func", "exportService.Export").Str("collection", collection.Name).Logger()

	if !collection.Relayable() {
		return models.ExportResponse{}, fmt.Errorf("%w: %s", ErrCollectionNotRelayable, collection.Name)
	}

	replica, err := s.replicas.Load(ctx, namespace, collection)
	if err != nil {
		return models.ExportResponse{}, err
	}

	snapshot := replica
	if key != "" {
		rec, ok := replica[key]
		if !ok {
			return models.ExportResponse{}, fmt.Errorf("%w: %s", ErrRecordNotFound, key)
		}
		snapshot = models.Replica{key: rec}
	}

	chunks, err := s.codec.Split(collection.Protocol, snapshot, s.policy)
	if err != nil {
		return models.ExportResponse{}, fmt.Errorf("split %s: %w", collection.Name, err)
	}
	parts, err := relay.EncodeAll(chunks)
	if err != nil {
		return models.ExportResponse{}, fmt.Errorf("encode %s: %w", collection.Name, err)
	}

	resp := models.ExportResponse{Parts: parts, Length: len(parts)}
	if len(chunks) > 0 {
		resp.TransferID = chunks[0].TransferID
	}

	log.Info().Str("transfer_id", resp.TransferID).Int("records", len(snapshot)).Int("parts", resp.Length).Msg("export prepared")
	return resp, nil
}
