package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sos-relay/internal/config"
	"github.com/MKhiriev/go-sos-relay/internal/handler"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/workers"
)

type countingWorker struct {
	started, stopped int
}

func (w *countingWorker) Start(context.Context) { w.started++ }
func (w *countingWorker) Stop()                 { w.stopped++ }

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, &config.ServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, nil, &config.ServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second, TokenIssuer: "go-sos-relay"}
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, nil, cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.Equal(t, cfg.HTTPAddress, s.httpServer.server.Addr)
	assert.Equal(t, time.Second, s.httpServer.server.ReadTimeout)
}

func TestServer_ShutdownStopsWorkers(t *testing.T) {
	w := &countingWorker{}
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), "127.0.0.1:0", time.Second, logger.Nop()),
		workers:    workers.NewWorkers(w),
		logger:     logger.Nop(),
	}

	s.workers.Start(context.Background())
	s.Shutdown()

	assert.Equal(t, 1, w.started)
	assert.Equal(t, 1, w.stopped)
}

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), ln.Addr().String(), time.Second, logger.Nop())

	done := make(chan struct{})
	go func() {
		_ = h.server.Serve(ln)
		close(done)
	}()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	h.Shutdown()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}
