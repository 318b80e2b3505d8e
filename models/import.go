// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImportStatus is the outcome of handling one scanned payload.
type ImportStatus string

const (
	// ImportRejected means the payload was malformed or of an unsupported
	// protocol. Nothing changed.
	ImportRejected ImportStatus = "rejected"

	// ImportInProgress means the part was recorded and more are expected.
	ImportInProgress ImportStatus = "in_progress"

	// ImportDuplicate means the part had already been recorded.
	ImportDuplicate ImportStatus = "duplicate"

	// ImportCompleted means every part arrived and the records were merged.
	ImportCompleted ImportStatus = "completed"
)

// ImportResult is reported to the operator after every scan.
type ImportResult struct {
	Status     ImportStatus `json:"status"`
	TransferID string       `json:"transfer_id,omitempty"`
	Received   int          `json:"received"`
	Expected   int          `json:"expected"`
	Accepted   int          `json:"accepted"`
	Discarded  int          `json:"discarded"`
	Reason     string       `json:"reason,omitempty"`
}

// ImportRequest carries one scanned QR text to the hub.
type ImportRequest struct {
	Text string `json:"text"`
}

// QRRequest asks the hub to render text as a QR image.
type QRRequest struct {
	Text string `json:"text"`
}
