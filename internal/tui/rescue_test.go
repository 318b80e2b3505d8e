package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-sos-relay/internal/mock"
	"github.com/MKhiriev/go-sos-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testReports = []models.RescueReport{
	{ID: "rescue_2", TS: "2026-10-19T10:00:00.000Z", People: 4, Injured: 1, Needs: []string{"water", "insulin"}, Status: models.RescueNeedHelp},
	{ID: "rescue_1", TS: "2026-10-19T09:00:00.000Z", People: 4, Status: models.RescueSafe},
}

// ── rescueModel ─────────────────────────────────────────────────────────────

func TestRescueModel_FormPrefilledFromLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRescueService(ctrl)
	svc.EXPECT().List(gomock.Any()).Return(testReports, nil)

	m := newRescueModel(context.Background(), svc)
	settle(t, m, m.Init())
	assert.Contains(t, m.View(), "water, insulin")

	m.Update(keyRunes("a"))
	require.NotNil(t, m.form)
	assert.Equal(t, "4", m.form.value(0))
	assert.Equal(t, "water, insulin", m.form.value(2))

	m.form.set(1, "2").set(4, "evacuated")
	want := models.RescueReport{People: 4, Injured: 2, Needs: []string{"water", "insulin"}, Status: models.RescueEvacuated}
	svc.EXPECT().Report(gomock.Any(), want).Return(want, nil)
	svc.EXPECT().List(gomock.Any()).Return(testReports, nil)

	_, cmd := m.Update(keyEnter)
	_, cmd = settle(t, m, cmd)
	settle(t, m, cmd)
	assert.Equal(t, "Status saved. Show it as QR with x", m.status)
}

func TestRescueModel_EmptyDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRescueService(ctrl)
	svc.EXPECT().List(gomock.Any()).Return(nil, nil)

	m := newRescueModel(context.Background(), svc)
	settle(t, m, m.Init())
	assert.Contains(t, m.View(), "No reports yet")

	m.Update(keyRunes("a"))
	assert.Equal(t, "1", m.form.value(0))
	assert.Equal(t, string(models.RescueNeedHelp), m.form.value(4))
}

func TestRescueModel_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRescueService(ctrl)
	svc.EXPECT().List(gomock.Any()).Return(testReports, nil)

	m := newRescueModel(context.Background(), svc)
	settle(t, m, m.Init())

	m.Update(keyRunes("j"))
	_, cmd := m.Update(keyRunes("x"))
	assert.Equal(t, exportRequest{collection: models.Rescue, key: "rescue_1"}, navigation(t, cmd).Payload)
}

func TestRescueFromForm(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    models.RescueReport
		wantErr string
	}{
		{
			name:   "needs are split and trimmed",
			values: []string{"3", "", " water ,, food ", "roof", "NEED_HELP"},
			want:   models.RescueReport{People: 3, Needs: []string{"water", "food"}, Note: "roof", Status: models.RescueNeedHelp},
		},
		{name: "no people", values: []string{"0", "0", "", "", "safe"}, wantErr: "people"},
		{name: "more injured than people", values: []string{"2", "3", "", "", "safe"}, wantErr: "injured"},
		{name: "unknown status", values: []string{"2", "0", "", "", "lost"}, wantErr: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newForm("t", "People", "Injured", "Needs", "Note", "Status")
			for i, v := range tt.values {
				f.set(i, v)
			}
			got, err := rescueFromForm(f)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
