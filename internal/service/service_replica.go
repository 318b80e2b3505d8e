package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/models"
)

type replicaService struct {
	replicas store.ReplicaStore
	now      func() time.Time

	// locks holds one *sync.Mutex per namespace/collection pair.
	locks sync.Map

	logger *logger.Logger
}

func NewReplicaService(replicas store.ReplicaStore, logger *logger.Logger) ReplicaService {
	return &replicaService{
		replicas: replicas,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *replicaService) Load(ctx context.Context, namespace string, collection models.Collection) (models.Replica, error) {
	unlock := s.lock(namespace, collection)
	defer unlock()

	return s.load(ctx, namespace, collection)
}

// Edit applies local edits. An edit always replaces the stored record of its
// key: when its timestamp is not strictly later (same millisecond, or a
// stored record stamped by a clock running ahead) it is restamped one
// millisecond after the stored one.
func (s *replicaService) Edit(ctx context.Context, namespace string, collection models.Collection, records ...models.Record) (relay.MergeResult, error) {
	now := s.now()
	stamp := relay.FormatTimestamp(now)
	edits := make([]models.Record, 0, len(records))
	for _, rec := range records {
		rec = rec.Clone()
		if rec.Timestamp == "" {
			rec.Timestamp = stamp
		}
		edits = append(edits, rec)
	}

	return s.apply(ctx, namespace, collection, func(local models.Replica) relay.MergeResult {
		supersede(local, edits, now)
		return relay.Merge(local, edits...)
	})
}

// supersede restamps every edit that would lose against the stored record
// of the same key.
func supersede(local models.Replica, edits []models.Record, now time.Time) {
	for i, rec := range edits {
		current, ok := local[rec.Key]
		if !ok || relay.Newer(rec, current) {
			continue
		}
		at := now
		if ts, ok := relay.ParseTimestamp(current.Timestamp); ok && !at.After(ts) {
			at = ts.Add(time.Millisecond)
		}
		edits[i].Timestamp = relay.FormatTimestamp(at)
	}
}

func (s *replicaService) Merge(ctx context.Context, namespace string, collection models.Collection, incoming models.Replica) (relay.MergeResult, error) {
	return s.apply(ctx, namespace, collection, func(local models.Replica) relay.MergeResult {
		return relay.MergeReplica(local, incoming)
	})
}

func (s *replicaService) Delete(ctx context.Context, namespace string, collection models.Collection, keys ...string) (int, error) {
	unlock := s.lock(namespace, collection)
	defer unlock()

	local, err := s.load(ctx, namespace, collection)
	if err != nil {
		return 0, err
	}

	next := local.Clone()
	removed := 0
	for _, key := range keys {
		if _, ok := next[key]; ok {
			delete(next, key)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}

	if err = s.replicas.Save(ctx, namespace, collection.Name, next); err != nil {
		return 0, fmt.Errorf("save %s/%s replica: %w", namespace, collection.Name, err)
	}
	return removed, nil
}

// apply runs merge against the stored replica and saves the result when
// anything changed.
func (s *replicaService) apply(ctx context.Context, namespace string, collection models.Collection, merge func(models.Replica) relay.MergeResult) (relay.MergeResult, error) {
	log := s.logger.With().Str("func", "replicaService.apply").
		Str("namespace", namespace).Str("collection", collection.Name).Logger()

	unlock := s.lock(namespace, collection)
	defer unlock()

	local, err := s.load(ctx, namespace, collection)
	if err != nil {
		return relay.MergeResult{}, err
	}

	res := merge(local)
	if res.Changed == 0 {
		log.Debug().Int("discarded", res.Discarded).Msg("nothing to save")
		return res, nil
	}

	if err = s.replicas.Save(ctx, namespace, collection.Name, res.Replica); err != nil {
		log.Err(err).Msg("failed to save replica")
		return relay.MergeResult{}, fmt.Errorf("save %s/%s replica: %w", namespace, collection.Name, err)
	}

	log.Debug().Int("changed", res.Changed).Int("discarded", res.Discarded).Msg("replica saved")
	return res, nil
}

func (s *replicaService) load(ctx context.Context, namespace string, collection models.Collection) (models.Replica, error) {
	local, err := s.replicas.Load(ctx, namespace, collection.Name)
	if err != nil {
		return nil, fmt.Errorf("load %s/%s replica: %w", namespace, collection.Name, err)
	}
	if local == nil {
		local = models.Replica{}
	}
	return local, nil
}

func (s *replicaService) lock(namespace string, collection models.Collection) func() {
	mu, _ := s.locks.LoadOrStore(namespace+"/"+collection.Name, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
