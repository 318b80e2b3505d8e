// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/mock"
	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

func newTestHubSvc(t *testing.T, ctrl *gomock.Controller) (HubService, *mock.MockRoomStore) {
	t.Helper()
	replicas, _ := newFileReplicas(t)
	validator := validators.NewRecordValidator()
	mockRooms := mock.NewMockRoomStore(ctrl)

	exports := NewExportService(replicas, relay.NewCodec(utils.NewUUIDGenerator()), relay.DefaultPolicy(), logger.Nop())
	imports := NewImportService(replicas, relay.NewSessions(), validator, logger.Nop())
	return NewHubService(mockRooms, replicas, exports, imports, validator, logger.Nop()), mockRooms
}

// ── RegisterRoom ─────────────────────────────────────────────────────────────

func TestHubService_RegisterRoom_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRooms := newTestHubSvc(t, ctrl)
	ctx := context.Background()

	mockRooms.EXPECT().CreateRoom(ctx, testRoom).Return(nil)

	created, err := svc.RegisterRoom(ctx, testRoom)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestHubService_RegisterRoom_Existing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRooms := newTestHubSvc(t, ctrl)
	ctx := context.Background()

	mockRooms.EXPECT().CreateRoom(ctx, testRoom).Return(store.ErrRoomAlreadyExists).Times(2)
	gomock.InOrder(
		mockRooms.EXPECT().GetRoom(ctx, testRoom.ID).Return(testRoom, nil),
		mockRooms.EXPECT().GetRoom(ctx, testRoom.ID).Return(models.Room{ID: testRoom.ID, Key: "ffeeddccbbaa99887766554433221100"}, nil),
	)

	created, err := svc.RegisterRoom(ctx, testRoom)
	require.NoError(t, err)
	assert.False(t, created)

	_, err = svc.RegisterRoom(ctx, testRoom)
	assert.ErrorIs(t, err, ErrRoomKeyMismatch)
}

func TestHubService_RegisterRoom_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestHubSvc(t, ctrl)

	_, err := svc.RegisterRoom(context.Background(), models.Room{ID: "room_ABC", Key: testRoom.Key})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestHubService_RoomKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRooms := newTestHubSvc(t, ctrl)
	ctx := context.Background()

	mockRooms.EXPECT().GetRoom(ctx, testRoom.ID).Return(testRoom, nil)
	mockRooms.EXPECT().GetRoom(ctx, "room_zzzzzz").Return(models.Room{}, store.ErrRoomNotFound)

	key, err := svc.RoomKey(ctx, testRoom.ID)
	require.NoError(t, err)
	assert.Equal(t, testRoom.Key, key)

	_, err = svc.RoomKey(ctx, "room_zzzzzz")
	assert.ErrorIs(t, err, store.ErrRoomNotFound)

	_, err = svc.RoomKey(ctx, "")
	assert.ErrorIs(t, err, ErrNoRoomIDProvided)
}

// ── Push / Pull ──────────────────────────────────────────────────────────────

func TestHubService_PushPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestHubSvc(t, ctrl)
	ctx := context.Background()

	first := []models.Record{
		bareShelter(t, "s1", "open", "2024-01-01T00:00:00Z"),
		bareShelter(t, "s1", "full", "2024-01-02T00:00:00Z"),
		bareShelter(t, "s2", "open", "2024-01-01T00:00:00Z"),
		bareShelter(t, "s3", "open", "tomorrow"),
	}
	report, err := svc.Push(ctx, testRoom.ID, models.Shelters, first)
	require.NoError(t, err)
	assert.Equal(t, models.MergeReport{Accepted: 2, Discarded: 2}, report)

	// a stale push from another device loses
	report, err = svc.Push(ctx, testRoom.ID, models.Shelters, []models.Record{
		bareShelter(t, "s1", "damaged", "2024-01-01T12:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.MergeReport{Accepted: 0, Discarded: 1}, report)

	pulled, err := svc.Pull(ctx, testRoom.ID, models.Shelters)
	require.NoError(t, err)
	require.Len(t, pulled, 2)
	var status string
	_, err = pulled[0].Field("status", &status)
	require.NoError(t, err)
	assert.Equal(t, "full", status)

	other, err := svc.Pull(ctx, "room_other1", models.Shelters)
	require.NoError(t, err)
	assert.Empty(t, other, "replicas are namespaced by room")
}

func TestHubService_ExportImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestHubSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Push(ctx, testRoom.ID, models.Rescue, []models.Record{
		mustEncode(t, models.RescueReport{ID: "r1", TS: "2024-01-01T00:00:00Z", People: 2, Status: models.RescueNeedHelp}),
	})
	require.NoError(t, err)

	export, err := svc.Export(ctx, testRoom.ID, models.Rescue, "")
	require.NoError(t, err)
	require.Len(t, export.Parts, 1)

	res, err := svc.Import(ctx, "room_other1", models.Rescue, export.Parts[0])
	require.NoError(t, err)
	assert.Equal(t, models.ImportCompleted, res.Status)
	assert.Equal(t, 1, res.Accepted)

	pulled, err := svc.Pull(ctx, "room_other1", models.Rescue)
	require.NoError(t, err)
	assert.Len(t, pulled, 1)
}

func TestHubService_Register_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRooms := newTestHubSvc(t, ctrl)
	dbErr := errors.New("db down")

	mockRooms.EXPECT().CreateRoom(gomock.Any(), testRoom).Return(dbErr)

	_, err := svc.RegisterRoom(context.Background(), testRoom)
	assert.ErrorIs(t, err, dbErr)
}
