package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-sos-relay/internal/config"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
)

// Storages groups the stores behind one configured backend.
type Storages struct {
	Replicas ReplicaStore
	Rooms    RoomStore

	closer io.Closer
}

// NewStorages opens the backend named by cfg.DB.Driver: an SQLite file or a
// PostgreSQL database (schema migrated on open), or a directory of JSON files.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	switch cfg.DB.Driver {
	case config.DriverFile:
		fs := NewFileStore(cfg.Files.Dir)
		return &Storages{Replicas: fs, Rooms: fs}, nil

	case config.DriverSQLite, config.DriverPostgres:
		connect := NewConnectSQLite
		if cfg.DB.Driver == config.DriverPostgres {
			connect = NewConnectPostgres
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{
			Replicas: NewReplicaRepository(db),
			Rooms:    NewRoomRepository(db),
			closer:   db,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
