package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sos-relay/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Last-write-wins per key
// ─────────────────────────────────────────────────────────────────────────────

func TestMerge_LastWriteWins(t *testing.T) {
	const (
		t1 = "2024-01-01T00:00:00Z"
		t2 = "2024-01-02T00:00:00Z"
	)

	tests := []struct {
		name        string
		localTS     string
		incomingTS  string
		wantReplace bool
	}{
		{"incoming later replaces", t1, t2, true},
		{"incoming earlier is discarded", t2, t1, false},
		{"equal keeps local", t1, t1, false},
		{"incoming without ts never overwrites", t1, "", false},
		{"incoming beats local without ts", "", t1, true},
		{"incoming beats unparseable local", "not-a-date", t1, true},
		{"both missing keeps local", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := replica(rec(t, "a", tt.localTS, map[string]any{"status": "local"}))
			incoming := rec(t, "a", tt.incomingTS, map[string]any{"status": "incoming"})

			res := Merge(local, incoming)

			if tt.wantReplace {
				assert.Equal(t, incoming, res.Replica["a"])
				assert.Equal(t, 1, res.Changed)
				assert.Equal(t, 1, res.Accepted)
				assert.Equal(t, 0, res.Discarded)
			} else {
				assert.Equal(t, local["a"], res.Replica["a"])
				assert.Equal(t, 0, res.Changed)
				assert.Equal(t, 0, res.Accepted)
				assert.Equal(t, 1, res.Discarded)
			}
		})
	}
}

func TestMerge_InsertsAbsentKeys(t *testing.T) {
	local := replica(rec(t, "a", "2024-01-01T00:00:00Z", nil))
	b := rec(t, "b", "", map[string]any{"n": 1})

	res := Merge(local, b)

	require.Len(t, res.Replica, 2)
	assert.Equal(t, b, res.Replica["b"])
	assert.Equal(t, 1, res.Changed)
}

func TestMerge_DoesNotMutateLocal(t *testing.T) {
	local := replica(rec(t, "a", "2024-01-01T00:00:00Z", map[string]any{"v": 1}))
	snapshot := local.Clone()

	res := Merge(local, rec(t, "a", "2024-02-01T00:00:00Z", map[string]any{"v": 2}), rec(t, "b", "", nil))

	assert.Equal(t, snapshot, local)
	assert.Len(t, res.Replica, 2)
}

func TestMerge_NilLocal(t *testing.T) {
	res := Merge(nil, rec(t, "a", "2024-01-01T00:00:00Z", nil))
	assert.Len(t, res.Replica, 1)
	assert.Equal(t, 1, res.Changed)
}

// ─────────────────────────────────────────────────────────────────────────────
// Convergence
// ─────────────────────────────────────────────────────────────────────────────

func TestMerge_Idempotent(t *testing.T) {
	local := replica(
		rec(t, "a", "2024-01-01T00:00:00Z", map[string]any{"v": "a-local"}),
		rec(t, "b", "2024-01-05T00:00:00Z", map[string]any{"v": "b-local"}),
	)
	incoming := []models.Record{
		rec(t, "a", "2024-01-02T00:00:00Z", map[string]any{"v": "a-new"}),
		rec(t, "b", "2024-01-01T00:00:00Z", map[string]any{"v": "b-old"}),
		rec(t, "c", "", map[string]any{"v": "c"}),
	}

	once := Merge(local, incoming...)
	twice := Merge(once.Replica, incoming...)

	assert.Equal(t, once.Replica, twice.Replica)
	assert.Equal(t, 2, once.Changed)
	assert.Equal(t, 0, twice.Changed)
}

func TestMerge_OrderIndependent(t *testing.T) {
	local := replica(rec(t, "a", "2024-01-01T00:00:00Z", map[string]any{"v": 0}))
	batch := []models.Record{
		rec(t, "a", "2024-01-03T00:00:00Z", map[string]any{"v": 3}),
		rec(t, "b", "2024-01-01T00:00:00Z", map[string]any{"v": 1}),
		rec(t, "a", "2024-01-02T00:00:00Z", map[string]any{"v": 2}),
	}
	reversed := []models.Record{batch[2], batch[1], batch[0]}

	forward := Merge(local, batch...)
	backward := Merge(local, reversed...)

	assert.Equal(t, forward.Replica, backward.Replica)

	// Applying the records one by one converges to the same replica.
	stepwise := local
	for _, r := range reversed {
		stepwise = Merge(stepwise, r).Replica
	}
	assert.Equal(t, forward.Replica, stepwise)
}

func TestMerge_IntraBatchCollision(t *testing.T) {
	older := rec(t, "a", "2024-01-01T00:00:00Z", map[string]any{"v": "older"})
	newer := rec(t, "a", "2024-01-02T00:00:00Z", map[string]any{"v": "newer"})

	for name, batch := range map[string][]models.Record{
		"older first": {older, newer},
		"newer first": {newer, older},
	} {
		t.Run(name, func(t *testing.T) {
			res := Merge(models.Replica{}, batch...)
			assert.Equal(t, newer, res.Replica["a"])
			assert.Equal(t, 1, res.Changed)
			assert.Equal(t, 1, res.Accepted)
			assert.Equal(t, 1, res.Discarded)
		})
	}
}

func TestReduce_EqualTimestampsAreOrderIndependent(t *testing.T) {
	x := rec(t, "a", "2024-01-01T00:00:00Z", map[string]any{"v": "x"})
	y := rec(t, "a", "2024-01-01T00:00:00Z", map[string]any{"v": "y"})

	assert.Equal(t, Reduce([]models.Record{x, y}), Reduce([]models.Record{y, x}))
}

func TestReduce_DropsKeylessRecords(t *testing.T) {
	out := Reduce([]models.Record{{Timestamp: "2024-01-01"}})
	assert.Empty(t, out)
}

func TestMergeReplica_UsesMapKeys(t *testing.T) {
	incoming := models.Replica{"s1": rec(t, "other", "2024-01-01T00:00:00Z", nil)}

	res := MergeReplica(models.Replica{}, incoming)

	require.Contains(t, res.Replica, "s1")
	assert.Equal(t, "s1", res.Replica["s1"].Key)
}
