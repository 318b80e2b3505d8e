package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// structuralFields are checked on records that arrive from other devices.
// Older exports omit most payload fields and stamp records with locale
// dates, so only the key must be well formed. An unreadable timestamp is
// kept and merges as the earliest instant.
var structuralFields = []string{validators.FieldID}

// newRecordID builds ids of the form "<slug>_<unix millis>", e.g.
// "kalix_church_1729341000000".
func newRecordID(name string, at time.Time) string {
	slug := strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if slug == "" {
		slug = "record"
	}
	return slug + "_" + strconv.FormatInt(at.UnixMilli(), 10)
}

// decodeReplica converts every record of replica into T, ordered by key.
func decodeReplica[T any](replica models.Replica) ([]T, error) {
	out := make([]T, 0, len(replica))
	for _, rec := range replica.Records() {
		var v T
		if err := models.DecodeRecord(rec, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func encodeRecord(v any) (models.Record, error) {
	rec, err := models.EncodeRecord(v)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return rec, nil
}

// savedAs decodes the record an edit stored under key.
func savedAs[T any](res relay.MergeResult, key string) (T, error) {
	var v T
	rec, ok := res.Replica[key]
	if !ok {
		return v, fmt.Errorf("%w: %s", ErrRecordNotFound, key)
	}
	if err := models.DecodeRecord(rec, &v); err != nil {
		return v, err
	}
	return v, nil
}
