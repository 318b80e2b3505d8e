// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PushRequest carries a batch of records from a device to the hub.
// A batch may hold several records for the same key; the newest one wins.
//
// Hash is the hex HMAC-SHA256 of the JSON-encoded Records, keyed with the
// room key. The hub refuses a batch whose hash does not match.
type PushRequest struct {
	Records []Record `json:"records"`
	Length  int      `json:"length"`
	Hash    string   `json:"hash"`
}

// PullResponse carries the hub's replica of one collection.
type PullResponse struct {
	Collection string   `json:"collection"`
	Records    []Record `json:"records"`
	Length     int      `json:"length"`
}

// MergeReport is the outcome of applying a batch to a replica.
type MergeReport struct {
	Accepted  int `json:"accepted"`
	Discarded int `json:"discarded"`
}

// SyncReport summarises one hub round-trip for a collection.
type SyncReport struct {
	Collection string      `json:"collection"`
	Pulled     MergeReport `json:"pulled"`
	Pushed     MergeReport `json:"pushed"`
}

// ExportResponse lists the encoded QR parts of one export.
type ExportResponse struct {
	TransferID string   `json:"transfer_id"`
	Parts      []string `json:"parts"`
	Length     int      `json:"length"`
}
