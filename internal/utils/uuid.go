package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers for transfers and traces.
type UUIDGenerator struct {
	compact bool
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewCompactUUIDGenerator drops the dashes from generated ids. Every QR part
// repeats its transfer id, so exports use the compact form.
func NewCompactUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{compact: true}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	if g.compact {
		return strings.ReplaceAll(id.String(), "-", "")
	}
	return id.String()
}
