package utils

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var compactID = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_Compact(t *testing.T) {
	g := NewCompactUUIDGenerator()

	id := g.Generate()
	assert.Regexp(t, compactID, id)

	// still a valid UUID once the dashes are gone
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_TimeOrdered(t *testing.T) {
	g := NewCompactUUIDGenerator()

	prev := g.Generate()
	for range 100 {
		next := g.Generate()
		assert.Greater(t, next, prev)
		prev = next
	}
}
