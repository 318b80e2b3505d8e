package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sos-relay/models"
)

func TestDecode_Envelope(t *testing.T) {
	text := `{"t":"SOS-SHELTERS","v":"2.0","id":"abc","part":2,"total":3,"ts":"2024-01-01T00:00:00Z",
		"data":{"s1":{"id":"s1","ts":"2024-01-01T00:00:00Z","status":"open"}}}`

	chunk, err := Decode(text, models.ProtocolShelters)
	require.NoError(t, err)

	assert.Equal(t, "abc", chunk.TransferID)
	assert.Equal(t, 2, chunk.Part)
	assert.Equal(t, 3, chunk.Total)
	require.Contains(t, chunk.Data, "s1")
	assert.Equal(t, "2024-01-01T00:00:00Z", chunk.Data["s1"].Timestamp)
	assert.Equal(t, `"open"`, string(chunk.Data["s1"].Payload["status"]))
}

func TestDecode_LegacyShapes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		protocol string
		wantKeys []string
	}{
		{
			name:     "single code with items",
			text:     `{"t":"SOS-SHELTERS","v":"1.2","ts":"2024-01-01T00:00:00Z","items":[{"id":"kalix_church","name":"Kalix","updated":"2024-01-01 10:00"},{"id":"b","name":"B"}]}`,
			protocol: models.ProtocolShelters,
			wantKeys: []string{"b", "kalix_church"},
		},
		{
			name:     "single code with data",
			text:     `{"t":"SOS-QR","v":"2.0","data":{"r1":{"people":2}}}`,
			protocol: models.ProtocolRescue,
			wantKeys: []string{"r1"},
		},
		{
			name:     "bare mapping",
			text:     `{"s1":{"status":"open","ts":"2024-01-01T00:00:00Z"},"s2":{"status":"full"}}`,
			protocol: models.ProtocolShelters,
			wantKeys: []string{"s1", "s2"},
		},
		{
			name:     "bare mapping with a record keyed t",
			text:     `{"t":{"status":"open","ts":"2024-01-01T00:00:00Z"},"v":{"status":"full"}}`,
			protocol: models.ProtocolShelters,
			wantKeys: []string{"t", "v"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunk, err := Decode(tt.text, tt.protocol)
			require.NoError(t, err)
			assert.Equal(t, tt.protocol, chunk.Type)
			assert.Equal(t, 1, chunk.Part)
			assert.Equal(t, 1, chunk.Total)
			assert.Empty(t, chunk.TransferID)
			assert.Equal(t, tt.wantKeys, chunk.Data.Keys())
			for key, r := range chunk.Data {
				assert.Equal(t, key, r.Key)
			}
		})
	}
}

func TestDecode_BareMappingKeyWins(t *testing.T) {
	chunk, err := Decode(`{"s1":{"id":"other","status":"open"}}`, models.ProtocolShelters)
	require.NoError(t, err)
	assert.Equal(t, "s1", chunk.Data["s1"].Key)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"not json", "not json", ErrMalformedPayload},
		{"json array", `[1,2]`, ErrMalformedPayload},
		{"json null", `null`, ErrMalformedPayload},
		{"other type", `{"t":"OTHER"}`, ErrUnsupportedProtocol},
		{"other collection", `{"t":"SOS-QR","v":"2.0","data":{"a":{}}}`, ErrUnsupportedProtocol},
		{"unknown version", `{"t":"SOS-SHELTERS","v":"9","data":{"a":{}}}`, ErrUnsupportedProtocol},
		{"missing version", `{"t":"SOS-SHELTERS","data":{"a":{}}}`, ErrUnsupportedProtocol},
		{"non-string type", `{"t":1,"v":"2.0"}`, ErrMalformedPayload},
		{"no records", `{"t":"SOS-SHELTERS","v":"2.0","data":{}}`, ErrMalformedPayload},
		{"no payload at all", `{"t":"SOS-SHELTERS","v":"2.0"}`, ErrMalformedPayload},
		{"partial address", `{"t":"SOS-SHELTERS","v":"2.0","id":"x","part":1,"data":{"a":{}}}`, ErrMalformedPayload},
		{"part beyond total", `{"t":"SOS-SHELTERS","v":"2.0","id":"x","part":3,"total":2,"data":{"a":{}}}`, ErrMalformedPayload},
		{"zero part", `{"t":"SOS-SHELTERS","v":"2.0","id":"x","part":0,"total":2,"data":{"a":{}}}`, ErrMalformedPayload},
		{"record not object", `{"t":"SOS-SHELTERS","v":"2.0","data":{"a":5}}`, ErrMalformedPayload},
		{"bare value not object", `{"a":"open"}`, ErrMalformedPayload},
		{"empty object", `{}`, ErrMalformedPayload},
		{"item without id", `{"t":"SOS-SHELTERS","v":"1.2","items":[{"name":"x"}]}`, ErrMalformedPayload},
		{"empty items", `{"t":"SOS-SHELTERS","v":"1.2","items":[]}`, ErrMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text, models.ProtocolShelters)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrRejected)
		})
	}
}

func TestDecode_RoundTripsEncode(t *testing.T) {
	snapshot := replica(
		rec(t, "s1", "2024-01-01T00:00:00Z", map[string]any{"status": "open", "capacity": 40, "notes": "a <b> & c"}),
		rec(t, "s2", "", map[string]any{"needs": []string{"water", "meds"}}),
	)
	chunks, err := newTestCodec().Split(models.ProtocolShelters, snapshot, DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	text, err := Encode(chunks[0])
	require.NoError(t, err)

	decoded, err := Decode(text, models.ProtocolShelters)
	require.NoError(t, err)
	assert.Equal(t, chunks[0], decoded)
}
