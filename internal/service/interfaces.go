// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic shared by the relay client and the
// hub: replica edits and merges, QR export and import, rooms, the typed
// collections and hub synchronisation.
//
// Services never talk to a transport. The client's terminal UI and the hub's
// HTTP handlers both call into this package.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/models"
)

// ReplicaService is the only writer of replicas. Reads and writes of one
// (namespace, collection) pair are serialised.
type ReplicaService interface {
	Load(ctx context.Context, namespace string, collection models.Collection) (models.Replica, error)

	// Edit applies local edits through the merger. Records without a
	// timestamp are stamped with the current time. A local edit always
	// replaces the stored record of its key; MergeResult.Replica holds the
	// records as saved.
	Edit(ctx context.Context, namespace string, collection models.Collection, records ...models.Record) (relay.MergeResult, error)

	// Merge applies records received from another device or the hub.
	Merge(ctx context.Context, namespace string, collection models.Collection, incoming models.Replica) (relay.MergeResult, error)

	// Delete removes keys locally and returns how many existed.
	Delete(ctx context.Context, namespace string, collection models.Collection, keys ...string) (int, error)
}

// ExportService turns a replica into the text of QR codes.
type ExportService interface {
	// Export splits the replica of collection into encoded parts. An empty
	// key exports every record; otherwise only the record stored under key.
	Export(ctx context.Context, namespace string, collection models.Collection, key string) (models.ExportResponse, error)
}

// ImportService feeds scanned QR text into transfer sessions and merges
// completed transfers.
type ImportService interface {
	// Import never returns an error for a bad payload: rejection is reported
	// through the result status. Errors are storage failures.
	Import(ctx context.Context, namespace string, collection models.Collection, text string) (models.ImportResult, error)
	Progress(transferID string) (received, expected int, ok bool)
	Cancel(transferID string) bool
	Expire(ttl time.Duration) int
}

// RoomService owns the room of this device.
type RoomService interface {
	// Current returns the saved room. On first use it falls back to the
	// configured room or generates a new one.
	Current(ctx context.Context) (models.Room, error)
	Regenerate(ctx context.Context) (models.Room, error)
	Join(ctx context.Context, room models.Room) error
}

type ShelterService interface {
	Add(ctx context.Context, shelter models.Shelter) (models.Shelter, error)
	// List returns shelters ordered by name. An empty status lists all.
	List(ctx context.Context, status models.ShelterStatus) ([]models.Shelter, error)
	Delete(ctx context.Context, id string) error
	// SeedDefaults stores the built-in shelters when the registry is empty
	// and reports whether it did.
	SeedDefaults(ctx context.Context) (bool, error)
	// MarkNearestAsMine marks the nearest shelter within 500 m of the point
	// as this device's shelter, or creates one there.
	MarkNearestAsMine(ctx context.Context, lat, lon float64, id string) (models.Shelter, error)
}

type RescueService interface {
	Report(ctx context.Context, report models.RescueReport) (models.RescueReport, error)
	List(ctx context.Context) ([]models.RescueReport, error)
}

type FamilyService interface {
	Add(ctx context.Context, member models.FamilyMember) (models.FamilyMember, error)
	ToggleSafe(ctx context.Context, id string) (models.FamilyMember, error)
	List(ctx context.Context) ([]models.FamilyMember, error)
}

// HealthService is the shelter health desk: triage of people and the supply
// inventory.
type HealthService interface {
	AddPatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	CycleStatus(ctx context.Context, id string) (models.Patient, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)
	AddSupply(ctx context.Context, supply models.Supply) (models.Supply, error)
	ListSupplies(ctx context.Context) ([]models.Supply, error)
	// Delete removes a patient or a supply line.
	Delete(ctx context.Context, collection models.Collection, id string) error
	Report(ctx context.Context) (models.HealthReport, error)
}

type MessageService interface {
	Compose(ctx context.Context, group, body string, encrypt bool) (models.Message, error)
	// List returns messages ordered by time. An empty group lists all.
	List(ctx context.Context, group string) ([]models.Message, error)
	// Reveal returns the readable body of msg, decrypting it when needed.
	Reveal(ctx context.Context, msg models.Message) (string, error)
	UnsentCount(ctx context.Context) (int, error)
	// MarkSynced flags the unsent messages among ids as delivered.
	MarkSynced(ctx context.Context, ids ...string) (int, error)
}

// HubSyncService exchanges the local replicas with the hub.
type HubSyncService interface {
	Sync(ctx context.Context) ([]models.SyncReport, error)
	SyncCollection(ctx context.Context, collection models.Collection) (models.SyncReport, error)
}

// HubService is the hub's side of synchronisation. Replicas are namespaced
// by room id.
type HubService interface {
	// RegisterRoom stores a new room and reports whether it was created.
	// Registering a known room with the same key is a no-op.
	RegisterRoom(ctx context.Context, room models.Room) (bool, error)

	// RoomKey returns the key that signs the tokens of roomID.
	RoomKey(ctx context.Context, roomID string) (string, error)

	Pull(ctx context.Context, roomID string, collection models.Collection) ([]models.Record, error)
	Push(ctx context.Context, roomID string, collection models.Collection, records []models.Record) (models.MergeReport, error)
	Export(ctx context.Context, roomID string, collection models.Collection, key string) (models.ExportResponse, error)
	Import(ctx context.Context, roomID string, collection models.Collection, text string) (models.ImportResult, error)
}

// AppInfoService describes the running hub build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
