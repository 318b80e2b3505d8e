// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the settings shared by the client and the hub.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Relay.MaxKeys <= 0 || cfg.Relay.MaxChars <= 0 || !validDuration(cfg.Relay.SessionTTL) {
		return ErrInvalidRelayConfigs
	}
	if (cfg.Relay.RoomID == "") != (cfg.Relay.RoomKey == "") {
		return fmt.Errorf("%w: room id and room key must be set together", ErrInvalidRelayConfigs)
	}

	if cfg.App.TokenIssuer == "" || !validDuration(cfg.App.TokenDuration) {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (s Storage) validate() error {
	switch s.DB.Driver {
	case DriverSQLite, DriverPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: empty DSN for %s", ErrInvalidStorageConfigs, s.DB.Driver)
		}
	case DriverFile:
		if s.Files.Dir == "" {
			return fmt.Errorf("%w: empty files directory", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.DB.Driver)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress != "" && !validDuration(cfg.Adapter.RequestTimeout) {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.Retries < 0 {
		return ErrInvalidAdapterConfigs
	}

	if !validDuration(cfg.Workers.SweepInterval) {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Adapter.HTTPAddress != "" && !validDuration(cfg.Workers.SyncInterval) {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || !validDuration(cfg.RequestTimeout) {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.DB.Driver == DriverFile {
		return fmt.Errorf("%w: the hub needs an SQL driver", ErrInvalidStorageConfigs)
	}
	return nil
}
