package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sos-relay/models"
)

var testRoom = models.Room{ID: "room_abc123", Key: "00112233445566778899aabbccddeeff"}

func TestRoomRepository_CreateRoom(t *testing.T) {
	db, mock, _ := newMockDB(t)

	mock.ExpectExec(`INSERT INTO rooms \(id,room_key\) VALUES \(\$1,\$2\)`).
		WithArgs(testRoom.ID, testRoom.Key).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewRoomRepository(db).CreateRoom(context.Background(), testRoom))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_CreateRoom_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"duplicate id", pgError(pgerrcode.UniqueViolation), ErrRoomAlreadyExists},
		{"other failure", errors.New("network"), ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, _ := newMockDB(t)
			mock.ExpectExec("INSERT INTO rooms").WillReturnError(tt.dbErr)

			err := NewRoomRepository(db).CreateRoom(context.Background(), testRoom)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoomRepository_SaveRoom(t *testing.T) {
	db, mock, _ := newMockDB(t)
	at := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	repo := &roomRepository{DB: db, now: func() time.Time { return at }}

	mock.ExpectExec(`INSERT INTO rooms .* ON CONFLICT \(id\) DO UPDATE`).
		WithArgs(testRoom.ID, testRoom.Key, at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveRoom(context.Background(), testRoom))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_GetRoom(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectQuery(`SELECT id, room_key FROM rooms WHERE id = \$1`).
		WithArgs(testRoom.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_key"}).AddRow(testRoom.ID, testRoom.Key))

	room, err := repo.GetRoom(context.Background(), testRoom.ID)
	require.NoError(t, err)
	assert.Equal(t, testRoom, room)

	mock.ExpectQuery(`SELECT id, room_key FROM rooms WHERE id = \$1`).
		WithArgs("room_zzzzzz").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_key"}))

	_, err = repo.GetRoom(context.Background(), "room_zzzzzz")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomRepository_CurrentRoom(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectQuery(`SELECT id, room_key FROM rooms ORDER BY updated_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_key"}).AddRow(testRoom.ID, testRoom.Key))

	room, err := repo.CurrentRoom(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testRoom, room)

	mock.ExpectQuery(`SELECT id, room_key FROM rooms`).WillReturnError(errors.New("closed"))
	_, err = repo.CurrentRoom(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}
