package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/models"
)

// newFileReplicas returns a replica service over a JSON file store in a
// temporary directory.
func newFileReplicas(t *testing.T) (*replicaService, *store.FileStore) {
	t.Helper()
	fs := store.NewFileStore(t.TempDir())
	return NewReplicaService(fs, logger.Nop()).(*replicaService), fs
}

// clock returns a now func fixed at the RFC 3339 instant ts.
func clock(t *testing.T, ts string) func() time.Time {
	t.Helper()
	at, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	return func() time.Time { return at }
}

// ticking returns a now func that starts at the RFC 3339 instant ts and
// moves one second forward on every call.
func ticking(t *testing.T, ts string) func() time.Time {
	t.Helper()
	at := clock(t, ts)()
	calls := 0
	return func() time.Time {
		calls++
		return at.Add(time.Duration(calls-1) * time.Second)
	}
}

func mustEncode(t *testing.T, v any) models.Record {
	t.Helper()
	rec, err := models.EncodeRecord(v)
	require.NoError(t, err)
	return rec
}

func shelter(id, ts, name string) models.Shelter {
	return models.Shelter{ID: id, TS: ts, Name: name, Status: models.ShelterOpen, Capacity: 10, Lat: 65.8, Lon: 23.1}
}
