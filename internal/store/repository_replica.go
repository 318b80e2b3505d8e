package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/models"
)

// replicaRepository is the SQL implementation of [ReplicaStore]. A replica is
// stored as one row per record; Save rewrites every row of the replica inside
// one transaction.
type replicaRepository struct {
	*DB
}

func NewReplicaRepository(db *DB) ReplicaStore {
	return &replicaRepository{DB: db}
}

func (r *replicaRepository) Load(ctx context.Context, namespace, collection string) (models.Replica, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildLoadReplicaQuery(namespace, collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "replicaRepository.Load").
			Str("namespace", namespace).
			Str("collection", collection).
			Msg("failed to query replica")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	replica := make(models.Replica)
	for rows.Next() {
		var key, payload string
		if err = rows.Scan(&key, &payload); err != nil {
			log.Err(err).
				Str("func", "replicaRepository.Load").
				Str("collection", collection).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		var rec models.Record
		if err = json.Unmarshal([]byte(payload), &rec); err != nil {
			log.Err(err).
				Str("func", "replicaRepository.Load").
				Str("collection", collection).
				Str("key", key).
				Msg("failed to decode stored record")
			return nil, fmt.Errorf("%w: record %s: %w", ErrCorruptedReplica, key, err)
		}
		rec.Key = key
		replica[key] = rec
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "replicaRepository.Load").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return replica, nil
}

func (r *replicaRepository) Save(ctx context.Context, namespace, collection string, replica models.Replica) error {
	log := logger.FromContext(ctx)

	err := r.withRetry(ctx, func() error {
		return r.save(ctx, namespace, collection, replica)
	})
	if err != nil {
		log.Err(err).
			Str("func", "replicaRepository.Save").
			Str("namespace", namespace).
			Str("collection", collection).
			Int("records", len(replica)).
			Msg("failed to save replica")
		return err
	}

	log.Debug().
		Str("func", "replicaRepository.Save").
		Str("collection", collection).
		Int("records", len(replica)).
		Msg("replica saved")
	return nil
}

func (r *replicaRepository) save(ctx context.Context, namespace, collection string, replica models.Replica) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.buildDeleteReplicaQuery(namespace, collection)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, key := range replica.Keys() {
		rec := replica[key]
		rec.Key = key

		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode record %s: %w", key, err)
		}

		query, args, err = r.buildInsertRecordQuery(namespace, collection, key, rec.Timestamp, string(payload))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
