// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ShelterStatus is the occupancy state reported for a shelter.
type ShelterStatus string

const (
	ShelterOpen    ShelterStatus = "open"
	ShelterFull    ShelterStatus = "full"
	ShelterDamaged ShelterStatus = "damaged"
	ShelterUnknown ShelterStatus = "unknown"
)

// ShelterStatuses lists every valid status.
var ShelterStatuses = []ShelterStatus{ShelterOpen, ShelterFull, ShelterDamaged, ShelterUnknown}

// Valid reports whether s is a known status.
func (s ShelterStatus) Valid() bool {
	for _, v := range ShelterStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Shelter is one entry of the shelter registry.
type Shelter struct {
	ID       string        `json:"id"`
	TS       string        `json:"ts,omitempty"`
	Name     string        `json:"name"`
	Status   ShelterStatus `json:"status"`
	Capacity int           `json:"capacity"`
	Lat      float64       `json:"lat"`
	Lon      float64       `json:"lon"`
	Notes    string        `json:"notes,omitempty"`
	Mine     bool          `json:"mine,omitempty"`
	Imported bool          `json:"imported,omitempty"`
}
