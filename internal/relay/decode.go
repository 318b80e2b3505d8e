package relay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sos-relay/models"
)

// Decode parses one scanned payload for protocol into a chunk.
//
// Three shapes are accepted:
//   - the chunk envelope {"t","v","id","part","total","ts","data"};
//   - a single-code envelope without id/part/total, carrying either a "data"
//     object or a legacy "items" array of records;
//   - a bare {key: record} object without a string "t" field.
//
// The last two decode to a chunk with Part and Total equal to 1. Any other
// input yields an error wrapping [ErrRejected].
func Decode(text, protocol string) (models.Chunk, error) {
	raw := []byte(strings.TrimSpace(text))

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return models.Chunk{}, fmt.Errorf("%w: not a JSON object", ErrMalformedPayload)
	}

	if !isEnvelope(obj) {
		return decodeBare(obj, protocol)
	}
	return decodeEnvelope(raw, protocol)
}

// isEnvelope reports whether obj carries a protocol type. A bare mapping may
// hold a record keyed "t", whose value is an object rather than a string.
func isEnvelope(obj map[string]json.RawMessage) bool {
	raw, ok := obj["t"]
	if !ok {
		return false
	}
	var t string
	return json.Unmarshal(raw, &t) == nil
}

type envelope struct {
	Type       string          `json:"t"`
	Version    string          `json:"v"`
	TransferID *string         `json:"id"`
	Part       *int            `json:"part"`
	Total      *int            `json:"total"`
	TS         string          `json:"ts"`
	Data       json.RawMessage `json:"data"`
	Items      json.RawMessage `json:"items"`
}

func decodeEnvelope(raw []byte, protocol string) (models.Chunk, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return models.Chunk{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if env.Type != protocol {
		return models.Chunk{}, fmt.Errorf("%w: type %q", ErrUnsupportedProtocol, env.Type)
	}
	if env.Version != models.ProtocolVersion && env.Version != models.LegacyProtocolVersion {
		return models.Chunk{}, fmt.Errorf("%w: version %q", ErrUnsupportedProtocol, env.Version)
	}

	chunk := models.Chunk{Type: env.Type, Version: env.Version, TS: env.TS, Part: 1, Total: 1}

	addressed := env.TransferID != nil || env.Part != nil || env.Total != nil
	if addressed {
		if env.TransferID == nil || *env.TransferID == "" || env.Part == nil || env.Total == nil {
			return models.Chunk{}, fmt.Errorf("%w: incomplete chunk address", ErrMalformedPayload)
		}
		if *env.Total < 1 || *env.Part < 1 || *env.Part > *env.Total {
			return models.Chunk{}, fmt.Errorf("%w: part %d of %d", ErrMalformedPayload, *env.Part, *env.Total)
		}
		chunk.TransferID = *env.TransferID
		chunk.Part = *env.Part
		chunk.Total = *env.Total
	}

	var (
		data models.Replica
		err  error
	)
	switch {
	case len(env.Data) > 0 && !isNull(env.Data):
		data, err = decodeData(env.Data)
	case len(env.Items) > 0 && !isNull(env.Items) && !addressed:
		data, err = decodeItems(env.Items)
	default:
		err = fmt.Errorf("%w: no records", ErrMalformedPayload)
	}
	if err != nil {
		return models.Chunk{}, err
	}
	chunk.Data = data
	return chunk, nil
}

func decodeBare(obj map[string]json.RawMessage, protocol string) (models.Chunk, error) {
	if !supportedProtocol(protocol) {
		return models.Chunk{}, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, protocol)
	}
	if len(obj) == 0 {
		return models.Chunk{}, fmt.Errorf("%w: no records", ErrMalformedPayload)
	}
	data := make(models.Replica, len(obj))
	for key, raw := range obj {
		rec, err := decodeRecord(key, raw)
		if err != nil {
			return models.Chunk{}, err
		}
		data[key] = rec
	}
	return models.Chunk{Type: protocol, Version: models.LegacyProtocolVersion, Part: 1, Total: 1, Data: data}, nil
}

func decodeData(raw json.RawMessage) (models.Replica, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: data must be an object", ErrMalformedPayload)
	}
	if len(obj) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrMalformedPayload)
	}
	data := make(models.Replica, len(obj))
	for key, v := range obj {
		rec, err := decodeRecord(key, v)
		if err != nil {
			return nil, err
		}
		data[key] = rec
	}
	return data, nil
}

func decodeItems(raw json.RawMessage) (models.Replica, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: items must be an array", ErrMalformedPayload)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrMalformedPayload)
	}
	data := make(models.Replica, len(items))
	for i, item := range items {
		var rec models.Record
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedPayload, i, err)
		}
		if rec.Key == "" {
			return nil, fmt.Errorf("%w: item %d has no id", ErrMalformedPayload, i)
		}
		data[rec.Key] = rec
	}
	return data, nil
}

// decodeRecord decodes one record stored under key. The key wins over any
// "id" field inside the record.
func decodeRecord(key string, raw json.RawMessage) (models.Record, error) {
	if key == "" {
		return models.Record{}, fmt.Errorf("%w: empty record key", ErrMalformedPayload)
	}
	var rec models.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return models.Record{}, fmt.Errorf("%w: record %q: %v", ErrMalformedPayload, key, err)
	}
	rec.Key = key
	return rec, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
