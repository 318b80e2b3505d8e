// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// relay client and the hub. It is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds logging and token settings.
	App App `envPrefix:"APP_"`

	// Relay holds the chunk policy, transfer session lifetime and the
	// preset room, if any.
	Relay Relay `envPrefix:"RELAY_"`

	// Storage selects and configures the replica store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the hub's listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the hub address as seen by a client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its log; the terminal UI owns
	// stdout. Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// DeviceName is used as the author of messages composed on this device.
	// Env: APP_DEVICE_NAME
	DeviceName string `env:"DEVICE_NAME"`

	// TokenIssuer is the "iss" claim of hub tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a hub token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Relay holds QR relay settings.
type Relay struct {
	// MaxKeys is the maximum number of records per QR code.
	// Env: RELAY_MAX_KEYS
	MaxKeys int `env:"MAX_KEYS"`

	// MaxChars is the maximum encoded length of one QR payload.
	// Env: RELAY_MAX_CHARS
	MaxChars int `env:"MAX_CHARS"`

	// SessionTTL is how long an incomplete import is kept without a new
	// part. Env: RELAY_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// RoomID and RoomKey preset the room instead of generating one.
	// Env: RELAY_ROOM_ID, RELAY_ROOM_KEY
	RoomID  string `env:"ROOM_ID"`
	RoomKey string `env:"ROOM_KEY"`
}

// Storage groups the replica store settings.
type Storage struct {
	// DB holds the SQL backend settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the JSON file backend settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQL backends.
type DB struct {
	// Driver is one of "sqlite", "postgres" or "file".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string: a file path for sqlite, a postgres URL
	// for postgres. Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings for the JSON file replica store.
type Files struct {
	// Dir is the directory that holds one JSON file per collection.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`
}

// Server holds network and timeout settings of the hub.
type Server struct {
	// HTTPAddress is the "host:port" the hub listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds client-side settings for talking to the hub.
type Adapter struct {
	// HTTPAddress is the hub base URL or "host:port". Empty disables hub
	// sync. Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Retries is the number of retries on transport errors.
	// Env: ADAPTER_RETRIES
	Retries int `env:"RETRIES"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// SyncInterval is how often the client syncs with the hub.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// SweepInterval is how often abandoned transfer sessions are expired.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// Supported storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverFile     = "file"
)

// defaults returns the values used for every field no source sets.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:      "info",
			DeviceName:    "device",
			TokenIssuer:   "go-sos-relay",
			TokenDuration: 5 * time.Minute,
		},
		Relay: Relay{
			MaxKeys:    3,
			MaxChars:   1800,
			SessionTTL: 30 * time.Minute,
		},
		Storage: Storage{
			DB: DB{Driver: DriverSQLite, DSN: "sos-relay.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
			Retries:        2,
		},
		Workers: Workers{
			SyncInterval:  time.Minute,
			SweepInterval: time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
