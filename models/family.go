// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FamilyMember is a person tracked by the family check-in list.
type FamilyMember struct {
	ID       string `json:"id"`
	TS       string `json:"ts,omitempty"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Safe     bool   `json:"safe"`
	LastSeen string `json:"last_seen,omitempty"`
}
