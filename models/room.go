// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Room is the single addressing unit shared by cooperating devices.
// Key is a hex string; it signs hub requests and seals group messages.
type Room struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// Valid reports whether both halves of the room are set.
func (r Room) Valid() bool {
	return r.ID != "" && r.Key != ""
}
