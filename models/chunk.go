// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Protocol discriminators carried in the "t" field of an exported payload.
const (
	ProtocolRescue   = "SOS-QR"
	ProtocolShelters = "SOS-SHELTERS"
)

// Envelope versions. ProtocolVersion is what exports produce;
// LegacyProtocolVersion is the single-code shelter export that listed
// records under "items".
const (
	ProtocolVersion       = "2.0"
	LegacyProtocolVersion = "1.2"
)

// Chunk is one bounded-size, addressed fragment of an exported replica
// snapshot. It is carried over a single visual code.
type Chunk struct {
	// Type is the protocol discriminator, e.g. [ProtocolShelters].
	Type string `json:"t"`

	// Version is the envelope version, see [ProtocolVersion].
	Version string `json:"v"`

	// TransferID is shared by every chunk of one export.
	TransferID string `json:"id,omitempty"`

	// Part is the 1-based position of the chunk within its transfer.
	Part int `json:"part,omitempty"`

	// Total is the number of chunks in the transfer.
	Total int `json:"total,omitempty"`

	// TS is the export time in ISO-8601.
	TS string `json:"ts,omitempty"`

	// Data holds the records carried by this chunk, keyed by record key.
	Data Replica `json:"data"`
}
