// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// PatientStatus is the triage state of a person at a shelter.
type PatientStatus string

const (
	PatientSafe     PatientStatus = "safe"
	PatientInjured  PatientStatus = "injured"
	PatientCritical PatientStatus = "critical"
	PatientDeceased PatientStatus = "deceased"
)

// PatientStatuses lists every status in triage order.
var PatientStatuses = []PatientStatus{PatientSafe, PatientInjured, PatientCritical, PatientDeceased}

// Valid reports whether s is a known status.
func (s PatientStatus) Valid() bool {
	for _, v := range PatientStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the status that follows s in triage order, wrapping around.
// An unknown status moves to the first one.
func (s PatientStatus) Next() PatientStatus {
	for i, v := range PatientStatuses {
		if s == v {
			return PatientStatuses[(i+1)%len(PatientStatuses)]
		}
	}
	return PatientStatuses[0]
}

// Patient is a person logged by the shelter health desk.
type Patient struct {
	ID     string        `json:"id"`
	TS     string        `json:"ts,omitempty"`
	Name   string        `json:"name"`
	Status PatientStatus `json:"status"`
	Injury string        `json:"injury,omitempty"`
	Notes  string        `json:"notes,omitempty"`
}

// Supply is one line of the shelter inventory. Amount is free text,
// e.g. "12 boxes".
type Supply struct {
	ID     string `json:"id"`
	TS     string `json:"ts,omitempty"`
	Item   string `json:"item"`
	Amount string `json:"amount,omitempty"`
}

// HealthReport summarises the health desk of the shelter this device
// belongs to.
type HealthReport struct {
	// ShelterID and ShelterName are empty when no shelter is marked as mine.
	ShelterID   string
	ShelterName string

	GeneratedAt time.Time

	// LastUpdate is the newest timestamp among the patients and supplies.
	LastUpdate string

	Patients []Patient
	Supplies []Supply
	Counts   map[PatientStatus]int
}

// String renders the report as plain text ready to be copied or read out
// over the radio.
func (r HealthReport) String() string {
	var b strings.Builder

	shelter := "-"
	switch {
	case r.ShelterName != "":
		shelter = r.ShelterName + " (" + r.ShelterID + ")"
	case r.ShelterID != "":
		shelter = r.ShelterID
	}
	fmt.Fprintf(&b, "SOS health report, shelter: %s\n", shelter)
	fmt.Fprintf(&b, "Date: %s\n", r.GeneratedAt.Format("2006-01-02 15:04"))
	if r.LastUpdate != "" {
		fmt.Fprintf(&b, "Last update: %s\n", r.LastUpdate)
	}

	b.WriteString("\nPeople:\n")
	if len(r.Patients) == 0 {
		b.WriteString("- (none)\n")
	}
	for _, p := range r.Patients {
		fmt.Fprintf(&b, "- %s: %s", p.Name, p.Status)
		if p.Injury != "" {
			fmt.Fprintf(&b, " (%s)", p.Injury)
		}
		if p.Notes != "" {
			fmt.Fprintf(&b, " -> %s", p.Notes)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nSupplies:\n")
	if len(r.Supplies) == 0 {
		b.WriteString("- (none)\n")
	}
	for _, s := range r.Supplies {
		amount := s.Amount
		if amount == "" {
			amount = "(n/a)"
		}
		fmt.Fprintf(&b, "- %s: %s\n", s.Item, amount)
	}

	b.WriteString("\nSummary:\n")
	fmt.Fprintf(&b, "%d total. Safe: %d, Injured: %d, Critical: %d, Deceased: %d.\n",
		len(r.Patients), r.Counts[PatientSafe], r.Counts[PatientInjured], r.Counts[PatientCritical], r.Counts[PatientDeceased])
	return b.String()
}
