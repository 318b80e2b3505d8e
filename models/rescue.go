// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RescueStatus is the self-reported state of a group awaiting rescue.
type RescueStatus string

const (
	RescueNeedHelp  RescueStatus = "need_help"
	RescueSafe      RescueStatus = "safe"
	RescueEvacuated RescueStatus = "evacuated"
)

// Valid reports whether s is a known status.
func (s RescueStatus) Valid() bool {
	switch s {
	case RescueNeedHelp, RescueSafe, RescueEvacuated:
		return true
	}
	return false
}

// RescueReport is a status report queued for relay to rescuers.
type RescueReport struct {
	ID      string       `json:"id"`
	TS      string       `json:"ts,omitempty"`
	People  int          `json:"people"`
	Injured int          `json:"injured"`
	Needs   []string     `json:"needs,omitempty"`
	Note    string       `json:"note,omitempty"`
	Status  RescueStatus `json:"status"`
}
