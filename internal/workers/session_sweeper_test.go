package workers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/mock"
)

func TestSessionSweeper_ExpiresWithTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	imports := mock.NewMockImportService(ctrl)

	swept := make(chan struct{}, 1)
	imports.EXPECT().Expire(3*time.Minute).DoAndReturn(func(time.Duration) int {
		select {
		case swept <- struct{}{}:
		default:
		}
		return 2
	}).MinTimes(1)

	w := NewSessionSweeper(imports, 3*time.Minute, 10*time.Millisecond, logger.Nop())
	w.Start(t.Context())

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweeper never ran")
	}
	w.Stop()
}

func TestSessionSweeper_DefaultTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	imports := mock.NewMockImportService(ctrl)

	imports.EXPECT().Expire(defaultSessionTTL).Return(0).MinTimes(1)

	w := NewSessionSweeper(imports, 0, 10*time.Millisecond, logger.Nop())
	w.Start(t.Context())
	assert.Eventually(t, func() bool { return ctrl.Satisfied() }, time.Second, 5*time.Millisecond)
	w.Stop()
}
