package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from os.Args on
// flag.CommandLine.
//
// Flags:
//
//	-a hub listen address in format [host]:[port]
//	-hub hub base URL used by the client
//	-driver storage driver: sqlite, postgres or file
//	-d database DSN
//	-files directory of the JSON file store
//	-c/-config json file path with configs
//	-log-level zerolog level
//	-log-file client log file
//	-device device name used as message author
//	-room, -room-key preset room
//	-max-keys, -max-chars chunk policy
//	-session-ttl idle lifetime of an incomplete import
//	-sync-interval hub sync period
//	-sweep-interval session sweep period
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-token-issuer, -token-duration hub token settings
func ParseFlags() (*StructuredConfig, error) {
	var (
		serverAddress  NetAddress
		cfg            StructuredConfig
		jsonConfigPath string
	)

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "hub", "", "Hub base URL")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Storage driver: sqlite, postgres or file")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.Dir, "files", "", "JSON file store directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file")
	fs.StringVar(&cfg.App.DeviceName, "device", "", "Device name")
	fs.StringVar(&cfg.Relay.RoomID, "room", "", "Room id")
	fs.StringVar(&cfg.Relay.RoomKey, "room-key", "", "Room key")
	fs.IntVar(&cfg.Relay.MaxKeys, "max-keys", 0, "Records per QR code")
	fs.IntVar(&cfg.Relay.MaxChars, "max-chars", 0, "Characters per QR code")
	fs.DurationVar(&cfg.Relay.SessionTTL, "session-ttl", 0, "Idle lifetime of an incomplete import")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Hub sync interval")
	fs.DurationVar(&cfg.Workers.SweepInterval, "sweep-interval", 0, "Session sweep interval")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 5m)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Adapter.RequestTimeout = cfg.Server.RequestTimeout
	cfg.JSONFilePath = jsonConfigPath

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// validDuration reports whether d is a usable positive interval.
func validDuration(d time.Duration) bool {
	return d > 0
}
