// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message is a short text addressed to a group within the room.
// When Encrypted is set, Body holds a sealed, base64-encoded ciphertext.
type Message struct {
	ID        string `json:"id"`
	TS        string `json:"ts,omitempty"`
	Group     string `json:"group"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	Encrypted bool   `json:"encrypted,omitempty"`
	Synced    bool   `json:"synced,omitempty"`
}
