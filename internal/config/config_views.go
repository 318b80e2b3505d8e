package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/models"
)

// ClientConfig is the relay client's view of [StructuredConfig].
type ClientConfig struct {
	App     App
	Relay   Relay
	Storage Storage
	Adapter Adapter
	Workers Workers
}

// Policy returns the configured chunk policy.
func (c *ClientConfig) Policy() relay.Policy {
	return relay.Policy{MaxKeys: c.Relay.MaxKeys, MaxChars: c.Relay.MaxChars}
}

// PresetRoom returns the room configured through RELAY_ROOM_ID and
// RELAY_ROOM_KEY. ok is false when none is configured.
func (c *ClientConfig) PresetRoom() (models.Room, bool) {
	room := models.Room{ID: c.Relay.RoomID, Key: c.Relay.RoomKey}
	return room, room.Valid()
}

// HubEnabled reports whether a hub address is configured.
func (c *ClientConfig) HubEnabled() bool {
	return c.Adapter.HTTPAddress != ""
}

// ServerConfig is the hub's view of [StructuredConfig].
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	TokenIssuer    string
	TokenDuration  time.Duration
	LogLevel       string
	Version        string
	Relay          Relay
	Storage        Storage
	Workers        Workers
}

// Policy returns the default chunk policy of exports rendered by the hub.
func (c *ServerConfig) Policy() relay.Policy {
	return relay.Policy{MaxKeys: c.Relay.MaxKeys, MaxChars: c.Relay.MaxChars}
}

// GetClientConfig loads the merged configuration and maps the fields the
// relay client needs.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return newClientConfig(cfg)
}

// GetServerConfig loads the merged configuration and maps the fields the
// hub needs.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return newServerConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Relay:   cfg.Relay,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
	}
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		TokenIssuer:    cfg.App.TokenIssuer,
		TokenDuration:  cfg.App.TokenDuration,
		LogLevel:       cfg.App.LogLevel,
		Version:        cfg.App.Version,
		Relay:          cfg.Relay,
		Storage:        cfg.Storage,
		Workers:        cfg.Workers,
	}
	if err := serverCfg.validate(); err != nil {
		return nil, err
	}
	return serverCfg, nil
}
