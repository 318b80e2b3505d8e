package relay

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sos-relay/models"
)

// Default chunk policy, matched to what a phone camera reliably reads from a
// single QR code.
const (
	DefaultMaxKeys  = 3
	DefaultMaxChars = 1800
)

// Policy bounds the size of a single chunk.
type Policy struct {
	// MaxKeys is the maximum number of records per chunk.
	MaxKeys int `json:"max_keys"`

	// MaxChars is the maximum length of an encoded chunk. A record that alone
	// exceeds it is still exported, in a chunk of its own.
	MaxChars int `json:"max_chars"`
}

// DefaultPolicy returns the default chunk policy.
func DefaultPolicy() Policy {
	return Policy{MaxKeys: DefaultMaxKeys, MaxChars: DefaultMaxChars}
}

// Validate checks that both limits are positive.
func (p Policy) Validate() error {
	if p.MaxKeys <= 0 || p.MaxChars <= 0 {
		return ErrInvalidChunkPolicy
	}
	return nil
}

// IDGenerator produces transfer identifiers.
type IDGenerator interface {
	Generate() string
}

// Codec splits replica snapshots into chunks. One Codec serves every
// collection; the protocol is chosen per call.
type Codec struct {
	ids IDGenerator
	now func() time.Time
}

// NewCodec creates a Codec that stamps transfers with ids from ids.
func NewCodec(ids IDGenerator) *Codec {
	return &Codec{ids: ids, now: time.Now}
}

// Split partitions snapshot into an ordered sequence of chunks for protocol.
//
// Keys are visited in ascending order. The working chunk is closed whenever
// adding the next record would take it past policy.MaxKeys records or
// policy.MaxChars encoded characters. Every chunk of one call shares a fresh
// transfer id; Part is 1-based and Total is the number of chunks.
// An empty snapshot yields an empty, non-nil slice.
func (c *Codec) Split(protocol string, snapshot models.Replica, policy Policy) ([]models.Chunk, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if !supportedProtocol(protocol) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, protocol)
	}
	if len(snapshot) == 0 {
		return []models.Chunk{}, nil
	}

	head := models.Chunk{
		Type:       protocol,
		Version:    models.ProtocolVersion,
		TransferID: c.ids.Generate(),
		Part:       len(snapshot),
		Total:      len(snapshot),
		TS:         FormatTimestamp(c.now()),
	}

	// Part and Total are set to the largest value they can take, so base is an
	// upper bound for every chunk's envelope.
	base, err := envelopeSize(head)
	if err != nil {
		return nil, err
	}

	var (
		groups [][]string
		buf    []string
		size   int
	)
	for _, key := range snapshot.Keys() {
		rec := snapshot[key]
		rec.Key = key
		entry, err := entrySize(key, rec)
		if err != nil {
			return nil, err
		}

		next := base + entry
		if len(buf) > 0 {
			next = size + 1 + entry
		}
		if len(buf) > 0 && (len(buf)+1 > policy.MaxKeys || next > policy.MaxChars) {
			groups = append(groups, buf)
			buf, next = nil, base+entry
		}
		buf = append(buf, key)
		size = next
	}
	if len(buf) > 0 {
		groups = append(groups, buf)
	}

	chunks := make([]models.Chunk, 0, len(groups))
	for i, keys := range groups {
		chunk := head
		chunk.Part = i + 1
		chunk.Total = len(groups)
		chunk.Data = make(models.Replica, len(keys))
		for _, key := range keys {
			rec := snapshot[key].Clone()
			rec.Key = key
			chunk.Data[key] = rec
		}
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Encode serializes a chunk to the text carried by one QR code.
func Encode(chunk models.Chunk) (string, error) {
	b, err := json.Marshal(chunk)
	if err != nil {
		return "", fmt.Errorf("encode chunk %d/%d: %w", chunk.Part, chunk.Total, err)
	}
	return string(b), nil
}

// EncodeAll serializes every chunk of a transfer in order.
func EncodeAll(chunks []models.Chunk) ([]string, error) {
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		text, err := Encode(chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}

// envelopeSize is the encoded length of chunk with an empty data object.
func envelopeSize(chunk models.Chunk) (int, error) {
	chunk.Data = models.Replica{}
	b, err := json.Marshal(chunk)
	if err != nil {
		return 0, fmt.Errorf("encode chunk envelope: %w", err)
	}
	return len(b), nil
}

// entrySize is the length of `"key":{record}` inside the data object.
func entrySize(key string, rec models.Record) (int, error) {
	k, err := json.Marshal(key)
	if err != nil {
		return 0, err
	}
	r, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("encode record %q: %w", key, err)
	}
	return len(k) + 1 + len(r), nil
}

func supportedProtocol(protocol string) bool {
	return protocol == models.ProtocolRescue || protocol == models.ProtocolShelters
}
