package relay

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sos-relay/models"
)

func TestCodec_Split_EmptySnapshot(t *testing.T) {
	chunks, err := newTestCodec().Split(models.ProtocolShelters, models.Replica{}, DefaultPolicy())
	require.NoError(t, err)
	assert.NotNil(t, chunks)
	assert.Empty(t, chunks)
}

func TestCodec_Split_InvalidInput(t *testing.T) {
	c := newTestCodec()
	snapshot := replica(rec(t, "a", "", nil))

	_, err := c.Split(models.ProtocolShelters, snapshot, Policy{MaxKeys: 0, MaxChars: 100})
	assert.ErrorIs(t, err, ErrInvalidChunkPolicy)

	_, err = c.Split(models.ProtocolShelters, snapshot, Policy{MaxKeys: 1, MaxChars: -1})
	assert.ErrorIs(t, err, ErrInvalidChunkPolicy)

	_, err = c.Split("OTHER", snapshot, DefaultPolicy())
	assert.ErrorIs(t, err, ErrUnsupportedProtocol)
}

func TestCodec_Split_AddressesChunks(t *testing.T) {
	snapshot := models.Replica{}
	for i := 0; i < 7; i++ {
		r := rec(t, fmt.Sprintf("k%d", i), "2024-01-01T00:00:00Z", map[string]any{"i": i})
		snapshot[r.Key] = r
	}

	chunks, err := newTestCodec().Split(models.ProtocolRescue, snapshot, Policy{MaxKeys: 3, MaxChars: 10_000})
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	seen := map[string]bool{}
	for i, c := range chunks {
		assert.Equal(t, models.ProtocolRescue, c.Type)
		assert.Equal(t, models.ProtocolVersion, c.Version)
		assert.Equal(t, "transfer-1", c.TransferID)
		assert.Equal(t, i+1, c.Part)
		assert.Equal(t, 3, c.Total)
		assert.LessOrEqual(t, len(c.Data), 3)
		for k := range c.Data {
			assert.False(t, seen[k], "key %s in two chunks", k)
			seen[k] = true
		}
	}
	assert.Len(t, seen, 7)
	assert.Equal(t, []string{"k0", "k1", "k2"}, chunks[0].Data.Keys())
}

func TestCodec_Split_FreshTransferIDPerCall(t *testing.T) {
	c := newTestCodec()
	snapshot := replica(rec(t, "a", "", nil))

	first, err := c.Split(models.ProtocolShelters, snapshot, DefaultPolicy())
	require.NoError(t, err)
	second, err := c.Split(models.ProtocolShelters, snapshot, DefaultPolicy())
	require.NoError(t, err)

	assert.NotEqual(t, first[0].TransferID, second[0].TransferID)
}

func TestCodec_Split_SizeBound(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	snapshot := models.Replica{}
	for i := 0; i < 60; i++ {
		r := rec(t, fmt.Sprintf("shelter_%03d", i), "2024-01-01T00:00:00.000Z", map[string]any{
			"name":     strings.Repeat("x", rnd.Intn(300)),
			"status":   "open",
			"capacity": rnd.Intn(500),
			"notes":    strings.Repeat("<&>", rnd.Intn(80)),
		})
		snapshot[r.Key] = r
	}

	policies := []Policy{
		{MaxKeys: 1, MaxChars: 50},
		{MaxKeys: 3, MaxChars: 600},
		{MaxKeys: 10, MaxChars: 1800},
		{MaxKeys: 100, MaxChars: 4000},
	}
	for _, p := range policies {
		t.Run(fmt.Sprintf("%d/%d", p.MaxKeys, p.MaxChars), func(t *testing.T) {
			chunks, err := newTestCodec().Split(models.ProtocolShelters, snapshot, p)
			require.NoError(t, err)

			total := 0
			for _, c := range chunks {
				text, err := Encode(c)
				require.NoError(t, err)
				assert.LessOrEqual(t, len(c.Data), p.MaxKeys)
				if len(c.Data) > 1 {
					assert.LessOrEqual(t, len(text), p.MaxChars, "part %d", c.Part)
				}
				total += len(c.Data)
			}
			assert.Equal(t, len(snapshot), total)
		})
	}
}

func TestCodec_Split_OversizedRecordGetsOwnChunk(t *testing.T) {
	snapshot := replica(
		rec(t, "a", "", map[string]any{"n": 1}),
		rec(t, "b", "", map[string]any{"notes": strings.Repeat("z", 1000)}),
		rec(t, "c", "", map[string]any{"n": 3}),
	)

	chunks, err := newTestCodec().Split(models.ProtocolShelters, snapshot, Policy{MaxKeys: 3, MaxChars: 300})
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Equal(t, []string{"a"}, chunks[0].Data.Keys())
	assert.Equal(t, []string{"b"}, chunks[1].Data.Keys())
	assert.Equal(t, []string{"c"}, chunks[2].Data.Keys())

	text, err := Encode(chunks[1])
	require.NoError(t, err)
	assert.Greater(t, len(text), 300)
}

func TestCodec_Split_DoesNotAliasSnapshot(t *testing.T) {
	snapshot := replica(rec(t, "a", "", map[string]any{"n": 1}))

	chunks, err := newTestCodec().Split(models.ProtocolShelters, snapshot, DefaultPolicy())
	require.NoError(t, err)

	chunks[0].Data["a"].Payload["n"][0] = '9'
	assert.Equal(t, "1", string(snapshot["a"].Payload["n"]))
}

func TestEncodeAll(t *testing.T) {
	snapshot := replica(rec(t, "a", "", nil), rec(t, "b", "", nil))
	chunks, err := newTestCodec().Split(models.ProtocolShelters, snapshot, Policy{MaxKeys: 1, MaxChars: 1000})
	require.NoError(t, err)

	texts, err := EncodeAll(chunks)
	require.NoError(t, err)
	require.Len(t, texts, 2)
	assert.Contains(t, texts[0], `"part":1`)
	assert.Contains(t, texts[1], `"part":2`)
	assert.Contains(t, texts[1], `"t":"SOS-SHELTERS"`)
}
