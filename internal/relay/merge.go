package relay

import (
	"bytes"
	"encoding/json"

	"github.com/MKhiriev/go-sos-relay/models"
)

// MergeResult is the outcome of [Merge].
type MergeResult struct {
	// Replica is the updated replica. It never aliases the input replica.
	Replica models.Replica

	// Changed is the number of keys that were inserted or replaced.
	Changed int

	// Accepted counts incoming records that ended up in Replica.
	Accepted int

	// Discarded counts incoming records that lost: stale against the local
	// record or superseded by a newer record of the same batch.
	Discarded int
}

// Merge applies incoming records to local under per-key last-write-wins.
//
// The batch is first reduced to one record per key (the latest timestamp
// wins, see [Reduce]). A reduced record is inserted when its key is absent
// and replaces the local record only when its timestamp is strictly later.
// local is not modified.
func Merge(local models.Replica, incoming ...models.Record) MergeResult {
	out := local.Clone()
	reduced := Reduce(incoming)

	res := MergeResult{Replica: out, Discarded: len(incoming) - len(reduced)}
	for _, key := range reduced.Keys() {
		rec := reduced[key]
		if current, ok := out[key]; ok && !Newer(rec, current) {
			res.Discarded++
			continue
		}
		out[key] = rec.Clone()
		res.Changed++
		res.Accepted++
	}
	return res
}

// MergeReplica is [Merge] for a keyed collection, e.g. a reassembled transfer.
// Map keys are authoritative: a record is stored under the key it arrived with.
func MergeReplica(local, incoming models.Replica) MergeResult {
	records := make([]models.Record, 0, len(incoming))
	for _, key := range incoming.Keys() {
		rec := incoming[key]
		rec.Key = key
		records = append(records, rec)
	}
	return Merge(local, records...)
}

// Reduce collapses a batch to one record per key. The record with the latest
// timestamp wins; equal timestamps are broken by comparing the canonical JSON
// encoding so the result does not depend on batch order. Records without a
// key are dropped.
func Reduce(records []models.Record) models.Replica {
	out := make(models.Replica, len(records))
	for _, rec := range records {
		if rec.Key == "" {
			continue
		}
		current, ok := out[rec.Key]
		if !ok || wins(rec, current) {
			out[rec.Key] = rec
		}
	}
	return out
}

// Newer reports whether a's timestamp is strictly later than b's.
func Newer(a, b models.Record) bool {
	return CompareTimestamps(a.Timestamp, b.Timestamp) > 0
}

func wins(a, b models.Record) bool {
	switch CompareTimestamps(a.Timestamp, b.Timestamp) {
	case 1:
		return true
	case -1:
		return false
	}
	return bytes.Compare(canonical(a), canonical(b)) > 0
}

func canonical(r models.Record) []byte {
	b, err := json.Marshal(r)
	if err != nil {
		return nil
	}
	return b
}
