// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the hub protocol.
//
// The hub is an optional rendezvous point: when a device has connectivity it
// pulls the room's replicas from the hub and pushes its own, and the same
// last-write-wins merge runs on both ends. [HubAdapter] decouples the service
// layer from the HTTP transport ([NewHTTPHubAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sos-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/hub_adapter_mock.go -package=mock

// HubAdapter defines communication with the hub. Every request is
// authenticated with a short-lived token signed with the room key.
type HubAdapter interface {
	// RegisterRoom announces the room to the hub. Registering an already known
	// room with the same key succeeds; a different key yields [ErrConflict].
	RegisterRoom(ctx context.Context, room models.Room) error

	// Pull fetches the hub's replica of collection for room.
	Pull(ctx context.Context, room models.Room, collection string) ([]models.Record, error)

	// Push sends records to the hub, which merges them into its replica.
	// A transport integrity hash keyed with the room key is attached
	// automatically.
	Push(ctx context.Context, room models.Room, collection string, records []models.Record) (models.MergeReport, error)
}
