package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/mock"
	"github.com/MKhiriev/go-sos-relay/internal/qr"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

const testIssuer = "go-sos-relay"

var testRoom = models.Room{ID: "room_abc123", Key: "00112233445566778899aabbccddeeff"}

type testHandler struct {
	*Handler
	hub     *mock.MockHubService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)
	hub := mock.NewMockHubService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	return &testHandler{
		Handler: &Handler{
			services:    &service.Services{HubService: hub, AppInfoService: appInfo},
			renderer:    qr.NewRenderer(128),
			validator:   validators.NewRecordValidator(),
			tokenIssuer: testIssuer,
			logger:      logger.Nop(),
		},
		hub:     hub,
		appInfo: appInfo,
	}
}

// bearer signs a token for room the way the client adapter does.
func bearer(t *testing.T, room models.Room, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, room.ID, ttl, room.Key)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func pushBody(t *testing.T, key string, records ...models.Record) *bytes.Reader {
	t.Helper()
	if records == nil {
		records = []models.Record{}
	}
	hash, err := utils.HashJSON(records, key)
	require.NoError(t, err)
	return jsonBody(t, models.PushRequest{Records: records, Length: len(records), Hash: hash})
}

func record(t *testing.T, key, ts, status string) models.Record {
	t.Helper()
	rec, err := models.NewRecord(key, ts, map[string]any{"status": status})
	require.NoError(t, err)
	return rec
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}
