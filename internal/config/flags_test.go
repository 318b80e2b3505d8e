package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress ──────────────────────────────────────────────────────────────

func TestNetAddress_String(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":8080", (&NetAddress{Port: 8080}).String())
	assert.Equal(t, "10.0.0.5:0", (&NetAddress{Host: "10.0.0.5"}).String())
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    NetAddress
		wantErr string
	}{
		{in: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{in: "192.168.1.20:9000", want: NetAddress{Host: "192.168.1.20", Port: 9000}},
		{in: ":8080", want: NetAddress{Port: 8080}},
		{in: "", wantErr: "host:port"},
		{in: "localhost", wantErr: "host:port"},
		{in: "a:b:c", wantErr: "host:port"},
		{in: ":", wantErr: "invalid syntax"},
		{in: "localhost:http", wantErr: "invalid syntax"},
		{in: "localhost:0", wantErr: "1-65535"},
		{in: "localhost:65536", wantErr: "1-65535"},
		{in: "hub.local:8080", wantErr: "incorrect IP-address"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, NetAddress{}, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

// ── ParseFlags ──────────────────────────────────────────────────────────────

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "hub settings",
			args: []string{"-a", "127.0.0.1:9000", "-driver", "postgres", "-d", "postgres://hub", "-request-timeout", "15s"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
				assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
				assert.Equal(t, "postgres://hub", cfg.Storage.DB.DSN)
				assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
			},
		},
		{
			name: "client settings",
			args: []string{
				"-hub", "http://hub:8080", "-room", "room_abc123", "-room-key", "k",
				"-max-keys", "2", "-max-chars", "900", "-session-ttl", "5m",
				"-sync-interval", "30s", "-sweep-interval", "10s",
				"-log-file", "/tmp/c.log", "-log-level", "info", "-device", "d1",
				"-driver", "file", "-files", "/tmp/sos",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://hub:8080", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "room_abc123", cfg.Relay.RoomID)
				assert.Equal(t, "k", cfg.Relay.RoomKey)
				assert.Equal(t, 2, cfg.Relay.MaxKeys)
				assert.Equal(t, 900, cfg.Relay.MaxChars)
				assert.Equal(t, 5*time.Minute, cfg.Relay.SessionTTL)
				assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
				assert.Equal(t, 10*time.Second, cfg.Workers.SweepInterval)
				assert.Equal(t, "/tmp/c.log", cfg.App.LogFile)
				assert.Equal(t, "info", cfg.App.LogLevel)
				assert.Equal(t, "d1", cfg.App.DeviceName)
				assert.Equal(t, DriverFile, cfg.Storage.DB.Driver)
				assert.Equal(t, "/tmp/sos", cfg.Storage.Files.Dir)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/sos.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/sos.json", cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)

			cfg, err := ParseFlags()
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// bad values fail the parse instead of being ignored
func TestParseFlags_InvalidValues(t *testing.T) {
	for _, args := range [][]string{
		{"-a", "invalid"},
		{"-a", "example.com:80"},
		{"-max-keys", "many"},
	} {
		withArgs(t, args...)

		_, err := ParseFlags()
		assert.Error(t, err, "args %v", args)
	}
}
