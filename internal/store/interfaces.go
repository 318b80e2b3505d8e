package store

import (
	"context"

	"github.com/MKhiriev/go-sos-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ReplicaStore persists whole replicas. Every call is atomic: Save replaces the
// stored replica of (namespace, collection) entirely or not at all.
//
// Devices keep their own data under [models.LocalNamespace]; the hub uses the
// room id as namespace.
type ReplicaStore interface {
	// Load returns the stored replica, or an empty one when nothing was saved.
	Load(ctx context.Context, namespace, collection string) (models.Replica, error)
	Save(ctx context.Context, namespace, collection string, replica models.Replica) error
}

// RoomStore persists rooms.
type RoomStore interface {
	// CreateRoom stores a new room. It fails with [ErrRoomAlreadyExists] when
	// the id is already registered.
	CreateRoom(ctx context.Context, room models.Room) error

	// SaveRoom inserts the room or replaces its key, and makes it current.
	SaveRoom(ctx context.Context, room models.Room) error

	GetRoom(ctx context.Context, roomID string) (models.Room, error)

	// CurrentRoom returns the most recently saved room.
	CurrentRoom(ctx context.Context) (models.Room, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
