package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sos-relay/internal/crypto"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/mock"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

// ── Rescue ───────────────────────────────────────────────────────────────────

func TestRescueService_Report(t *testing.T) {
	replicas, _ := newFileReplicas(t)
	svc := NewClientRescueService(replicas, validators.NewRecordValidator(), logger.Nop()).(*clientRescueService)
	svc.now = ticking(t, "2024-10-19T12:00:00Z")
	ctx := context.Background()

	first, err := svc.Report(ctx, models.RescueReport{People: 4, Injured: 1, Needs: []string{"water"}, Note: " roof "})
	require.NoError(t, err)
	assert.Equal(t, models.RescueNeedHelp, first.Status)
	assert.Equal(t, "roof", first.Note)
	assert.Equal(t, "rescue_1729339200000", first.ID)

	second, err := svc.Report(ctx, models.RescueReport{People: 2, Status: models.RescueSafe})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, []string{"water"}, list[1].Needs)
}

func TestRescueService_Report_Invalid(t *testing.T) {
	replicas, _ := newFileReplicas(t)
	svc := NewClientRescueService(replicas, validators.NewRecordValidator(), logger.Nop())

	_, err := svc.Report(context.Background(), models.RescueReport{People: 1, Injured: 2})
	assert.ErrorIs(t, err, validators.ErrInvalidPeopleCount)
}

// ── Family ───────────────────────────────────────────────────────────────────

func TestFamilyService_AddAndToggle(t *testing.T) {
	replicas, _ := newFileReplicas(t)
	svc := NewClientFamilyService(replicas, validators.NewRecordValidator(), logger.Nop()).(*clientFamilyService)
	svc.now = ticking(t, "2024-10-19T12:00:00Z")
	ctx := context.Background()

	anna, err := svc.Add(ctx, models.FamilyMember{Name: "Anna", Location: "school"})
	require.NoError(t, err)
	assert.False(t, anna.Safe)
	assert.Equal(t, "2024-10-19T12:00:00.000Z", anna.LastSeen)

	toggled, err := svc.ToggleSafe(ctx, anna.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Safe)
	assert.Equal(t, "2024-10-19T12:00:01.000Z", toggled.LastSeen)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, toggled, list[0])

	_, err = svc.ToggleSafe(ctx, "nobody")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = svc.Add(ctx, models.FamilyMember{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFamilyService_ToggleSafe_EditIsNeverLost(t *testing.T) {
	tests := []struct {
		name     string
		storedTS string
		wantTS   string
	}{
		{
			name:     "same millisecond as the stored record",
			storedTS: "2024-10-19T12:00:00.000Z",
			wantTS:   "2024-10-19T12:00:00.001Z",
		},
		{
			name:     "stored record from a clock running ahead",
			storedTS: "2031-01-01T00:00:00.000Z",
			wantTS:   "2031-01-01T00:00:00.001Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replicas, _ := newFileReplicas(t)
			svc := NewClientFamilyService(replicas, validators.NewRecordValidator(), logger.Nop()).(*clientFamilyService)
			svc.now = clock(t, "2024-10-19T12:00:00Z")
			ctx := context.Background()

			_, err := replicas.Merge(ctx, models.LocalNamespace, models.Family, models.Replica{
				"anna": mustEncode(t, models.FamilyMember{ID: "anna", TS: tt.storedTS, Name: "Anna"}),
			})
			require.NoError(t, err)

			toggled, err := svc.ToggleSafe(ctx, "anna")
			require.NoError(t, err)
			assert.True(t, toggled.Safe)
			assert.Equal(t, tt.wantTS, toggled.TS)

			list, err := svc.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, toggled, list[0], "returned member must be the stored one")
		})
	}
}

// ── Messages ─────────────────────────────────────────────────────────────────

func newTestMessageSvc(t *testing.T, cipher crypto.RoomCipher) *clientMessageService {
	t.Helper()
	replicas, fs := newFileReplicas(t)
	rooms := NewRoomService(fs, crypto.NewRoomCipher(), validators.NewRecordValidator(), testRoom, logger.Nop())
	svc := NewClientMessageService(replicas, rooms, cipher, validators.NewRecordValidator(), "kalix-1", logger.Nop()).(*clientMessageService)
	svc.now = ticking(t, "2024-10-19T12:00:00Z")
	return svc
}

func TestMessageService_ComposeAndReveal(t *testing.T) {
	svc := newTestMessageSvc(t, crypto.NewRoomCipher())
	ctx := context.Background()

	plain, err := svc.Compose(ctx, "family", "at the church", false)
	require.NoError(t, err)
	assert.Equal(t, "kalix-1", plain.Author)
	assert.False(t, plain.Encrypted)

	secret, err := svc.Compose(ctx, "family", "key under the mat", true)
	require.NoError(t, err)
	assert.True(t, secret.Encrypted)
	assert.NotEqual(t, "key under the mat", secret.Body)

	list, err := svc.List(ctx, "family")
	require.NoError(t, err)
	require.Len(t, list, 2)

	body, err := svc.Reveal(ctx, list[1])
	require.NoError(t, err)
	assert.Equal(t, "key under the mat", body)

	body, err = svc.Reveal(ctx, list[0])
	require.NoError(t, err)
	assert.Equal(t, "at the church", body)

	other, err := svc.List(ctx, "neighbours")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMessageService_Compose_Invalid(t *testing.T) {
	svc := newTestMessageSvc(t, crypto.NewRoomCipher())
	ctx := context.Background()

	_, err := svc.Compose(ctx, " ", "hello", false)
	assert.ErrorIs(t, err, ErrNoMessageGroup)

	_, err = svc.Compose(ctx, "family", "   ", false)
	assert.ErrorIs(t, err, validators.ErrEmptyBody)
}

func TestMessageService_Compose_SealError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCipher := mock.NewMockRoomCipher(ctrl)
	svc := newTestMessageSvc(t, mockCipher)
	sealErr := errors.New("bad key")

	mockCipher.EXPECT().Seal("hello", testRoom.Key).Return("", sealErr)

	_, err := svc.Compose(context.Background(), "family", "hello", true)
	assert.ErrorIs(t, err, sealErr)

	n, err := svc.UnsentCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n, "nothing is stored when sealing fails")
}

func TestMessageService_UnsentAndMarkSynced(t *testing.T) {
	svc := newTestMessageSvc(t, crypto.NewRoomCipher())
	ctx := context.Background()

	var pushed []string
	for _, body := range []string{"one", "two"} {
		msg, err := svc.Compose(ctx, "family", body, false)
		require.NoError(t, err)
		pushed = append(pushed, msg.ID)
	}
	// composed after the push went out
	late, err := svc.Compose(ctx, "family", "three", false)
	require.NoError(t, err)

	n, err := svc.UnsentCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	marked, err := svc.MarkSynced(ctx, pushed...)
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	n, err = svc.UnsentCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	for _, m := range list {
		assert.Equal(t, m.ID != late.ID, m.Synced, m.Body)
	}

	marked, err = svc.MarkSynced(ctx, pushed...)
	require.NoError(t, err)
	assert.Equal(t, 0, marked)

	marked, err = svc.MarkSynced(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}
