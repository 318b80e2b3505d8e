package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-sos-relay/models"
)

const roomsFileName = "rooms.json"

// FileStore keeps every replica in its own JSON file under dir and rooms in
// dir/rooms.json. Files are replaced through a rename, so a crash mid-write
// leaves the previous version in place.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

type persistedRooms struct {
	Current string            `json:"current"`
	Rooms   map[string]string `json:"rooms"`
}

// NewFileStore returns a store rooted at dir. The directory is created on
// first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) replicaPath(namespace, collection string) string {
	return filepath.Join(s.dir, filepath.Base(namespace), filepath.Base(collection)+".json")
}

func (s *FileStore) Load(_ context.Context, namespace, collection string) (models.Replica, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	replica := make(models.Replica)
	found, err := s.read(s.replicaPath(namespace, collection), &replica)
	if err != nil {
		return nil, err
	}
	if !found {
		return make(models.Replica), nil
	}

	for key, rec := range replica {
		rec.Key = key
		replica[key] = rec
	}
	return replica, nil
}

func (s *FileStore) Save(_ context.Context, namespace, collection string, replica models.Replica) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if replica == nil {
		replica = models.Replica{}
	}
	return s.write(s.replicaPath(namespace, collection), replica)
}

func (s *FileStore) CreateRoom(_ context.Context, room models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.loadRooms()
	if err != nil {
		return err
	}
	if _, ok := st.Rooms[room.ID]; ok {
		return ErrRoomAlreadyExists
	}
	st.Rooms[room.ID] = room.Key
	if st.Current == "" {
		st.Current = room.ID
	}
	return s.write(filepath.Join(s.dir, roomsFileName), st)
}

func (s *FileStore) SaveRoom(_ context.Context, room models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.loadRooms()
	if err != nil {
		return err
	}
	st.Rooms[room.ID] = room.Key
	st.Current = room.ID
	return s.write(filepath.Join(s.dir, roomsFileName), st)
}

func (s *FileStore) GetRoom(_ context.Context, roomID string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.loadRooms()
	if err != nil {
		return models.Room{}, err
	}
	key, ok := st.Rooms[roomID]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	return models.Room{ID: roomID, Key: key}, nil
}

func (s *FileStore) CurrentRoom(ctx context.Context) (models.Room, error) {
	s.mu.RLock()
	current := ""
	st, err := s.loadRooms()
	if err == nil {
		current = st.Current
	}
	s.mu.RUnlock()

	if err != nil {
		return models.Room{}, err
	}
	if current == "" {
		return models.Room{}, ErrRoomNotFound
	}
	return s.GetRoom(ctx, current)
}

func (s *FileStore) loadRooms() (persistedRooms, error) {
	st := persistedRooms{Rooms: make(map[string]string)}
	if _, err := s.read(filepath.Join(s.dir, roomsFileName), &st); err != nil {
		return persistedRooms{}, err
	}
	if st.Rooms == nil {
		st.Rooms = make(map[string]string)
	}
	return st, nil
}

// read decodes path into v. found is false when the file does not exist.
func (s *FileStore) read(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read local storage file: %w", err)
	}

	if err = json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrCorruptedReplica, filepath.Base(path), err)
	}
	return true, nil
}

func (s *FileStore) write(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create local storage dir: %w", err)
	}

	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}
	return nil
}
