// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Wire names of the two fields every record carries next to its payload.
const (
	FieldKey       = "id"
	FieldTimestamp = "ts"
)

// legacyTimestampFields are accepted on decode when "ts" is absent.
// Older shelter exports stamped records with "updated".
var legacyTimestampFields = []string{"updated", "timestamp"}

// ErrRecordNotObject is returned when a record is not encoded as a JSON object.
var ErrRecordNotObject = errors.New("record must be a JSON object")

// Record is a single keyed, timestamped unit of shelter or status data.
//
// On the wire a record is a flat JSON object: the payload fields plus "id"
// (Key) and "ts" (Timestamp, ISO-8601). Payload values are kept as compacted
// raw JSON so a record survives any number of encode/decode cycles unchanged.
type Record struct {
	Key       string
	Timestamp string
	Payload   map[string]json.RawMessage
}

// NewRecord builds a record from arbitrary JSON-compatible field values.
func NewRecord(key, timestamp string, fields map[string]any) (Record, error) {
	rec := Record{Key: key, Timestamp: timestamp, Payload: make(map[string]json.RawMessage, len(fields))}
	for name, value := range fields {
		if name == FieldKey || name == FieldTimestamp {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return Record{}, fmt.Errorf("encode record field %q: %w", name, err)
		}
		rec.Payload[name] = raw
	}
	return rec, nil
}

// Field decodes the payload field name into dst. It reports false when the
// field is absent.
func (r Record) Field(name string, dst any) (bool, error) {
	raw, ok := r.Payload[name]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("decode record field %q: %w", name, err)
	}
	return true, nil
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := Record{Key: r.Key, Timestamp: r.Timestamp}
	if r.Payload != nil {
		out.Payload = make(map[string]json.RawMessage, len(r.Payload))
		for k, v := range r.Payload {
			out.Payload[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

// MarshalJSON encodes r as a flat object. Object keys come out sorted, so
// equal records always produce identical bytes.
func (r Record) MarshalJSON() ([]byte, error) {
	obj := make(map[string]json.RawMessage, len(r.Payload)+2)
	for k, v := range r.Payload {
		obj[k] = v
	}

	key, err := json.Marshal(r.Key)
	if err != nil {
		return nil, err
	}
	obj[FieldKey] = key

	if r.Timestamp != "" {
		ts, err := json.Marshal(r.Timestamp)
		if err != nil {
			return nil, err
		}
		obj[FieldTimestamp] = ts
	}

	return json.Marshal(obj)
}

// UnmarshalJSON decodes a flat record object. A non-string "id" or "ts" is an
// error; any other field lands in Payload.
func (r *Record) UnmarshalJSON(b []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return ErrRecordNotObject
	}
	if obj == nil {
		return ErrRecordNotObject
	}

	rec := Record{Payload: make(map[string]json.RawMessage, len(obj))}

	if raw, ok := obj[FieldKey]; ok {
		if err := json.Unmarshal(raw, &rec.Key); err != nil {
			return fmt.Errorf("record id must be a string: %w", err)
		}
		delete(obj, FieldKey)
	}

	if raw, ok := obj[FieldTimestamp]; ok {
		if err := json.Unmarshal(raw, &rec.Timestamp); err != nil {
			return fmt.Errorf("record ts must be a string: %w", err)
		}
		delete(obj, FieldTimestamp)
	} else {
		for _, alias := range legacyTimestampFields {
			raw, ok := obj[alias]
			if !ok {
				continue
			}
			var ts string
			if json.Unmarshal(raw, &ts) == nil {
				rec.Timestamp = ts
				delete(obj, alias)
				break
			}
		}
	}

	for k, v := range obj {
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			return fmt.Errorf("record field %q: %w", k, err)
		}
		rec.Payload[k] = buf.Bytes()
	}

	*r = rec
	return nil
}

// Replica is one device's local view of a collection, keyed by record key.
type Replica map[string]Record

// Clone returns a deep copy of r. A nil replica clones to an empty one.
func (r Replica) Clone() Replica {
	out := make(Replica, len(r))
	for k, v := range r {
		out[k] = v.Clone()
	}
	return out
}

// Keys returns the record keys in ascending order.
func (r Replica) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Records returns the records ordered by key.
func (r Replica) Records() []Record {
	out := make([]Record, 0, len(r))
	for _, k := range r.Keys() {
		out = append(out, r[k])
	}
	return out
}

// EncodeRecord converts a typed value (e.g. [Shelter]) into a Record. The value
// must marshal to a JSON object carrying "id" and, optionally, "ts".
func EncodeRecord(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Record{}, fmt.Errorf("encode record: %w", err)
	}
	var rec Record
	if err = json.Unmarshal(raw, &rec); err != nil {
		return Record{}, fmt.Errorf("encode record: %w", err)
	}
	return rec, nil
}

// DecodeRecord converts a Record back into a typed value.
func DecodeRecord(rec Record, v any) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("decode record %s: %w", rec.Key, err)
	}
	if err = json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode record %s: %w", rec.Key, err)
	}
	return nil
}
