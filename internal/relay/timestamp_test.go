package relay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in     string
		want   time.Time
		wantOK bool
	}{
		{"2024-01-01T00:00:00Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-01T00:00:00.250Z", time.Date(2024, 1, 1, 0, 0, 0, 250_000_000, time.UTC), true},
		{"2024-01-01T02:00:00+02:00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-01T00:00:00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"yesterday", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestCompareTimestamps(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"later", "2024-01-02T00:00:00Z", "2024-01-01T00:00:00Z", 1},
		{"earlier", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z", -1},
		{"equal", "2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z", 0},
		{"same instant different zone", "2024-01-01T02:00:00+02:00", "2024-01-01T00:00:00Z", 0},
		{"chronological not lexical", "2024-01-01T09:00:00+00:00", "2024-01-01T10:00:00+05:00", 1},
		{"missing loses", "", "2024-01-01T00:00:00Z", -1},
		{"unparseable loses", "garbage", "1970-01-01T00:00:00Z", -1},
		{"both missing", "", "bad", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareTimestamps(tt.a, tt.b))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 5, 7, 8, 9, 123_456_789, time.FixedZone("x", 3600))
	assert.Equal(t, "2024-03-05T06:08:09.123Z", FormatTimestamp(ts))
}
