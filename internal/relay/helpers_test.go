package relay

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sos-relay/models"
)

// seqIDs hands out predictable transfer ids.
type seqIDs struct{ n int }

func (g *seqIDs) Generate() string {
	g.n++
	return fmt.Sprintf("transfer-%d", g.n)
}

func newTestCodec() *Codec {
	c := NewCodec(&seqIDs{})
	c.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

func rec(t *testing.T, key, ts string, fields map[string]any) models.Record {
	t.Helper()
	r, err := models.NewRecord(key, ts, fields)
	require.NoError(t, err)
	return r
}

func replica(records ...models.Record) models.Replica {
	out := make(models.Replica, len(records))
	for _, r := range records {
		out[r.Key] = r
	}
	return out
}
