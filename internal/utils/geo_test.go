package utils

import (
	"math"
	"testing"
)

func TestHaversineMeters(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want, tolerance        float64
	}{
		{"same point", 65.85, 23.14, 65.85, 23.14, 0, 1e-6},
		{"one degree of latitude", 0, 0, 1, 0, 111_195, 10},
		{"Kalix to Luleå", 65.8525, 23.1447, 65.5848, 22.1547, 54_200, 500},
		{"antipodes", 0, 0, 0, 180, math.Pi * EarthRadiusMeters, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineMeters(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("got %.1f m, want %.1f±%.1f", got, tt.want, tt.tolerance)
			}
		})
	}
}
