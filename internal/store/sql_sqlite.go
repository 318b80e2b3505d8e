package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-sos-relay/internal/config"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/migrations"
)

// sqlitePragmas are appended to a plain file DSN. The device saves after every
// edit, so WAL keeps a crash from losing the last committed replica.
var sqlitePragmas = []string{"_journal_mode=WAL", "_busy_timeout=5000", "_synchronous=NORMAL"}

// NewConnectSQLite opens the device database. The file and its directory are
// created on first use.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	l := log.With().Str("func", "NewConnectSQLite").Logger()

	if err := ensureDBDir(cfg.DSN); err != nil {
		l.Err(err).Msg("error creating database directory")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		l.Err(err).Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// one writer at a time; more connections only produce SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		l.Err(err).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	l.Debug().Str("dsn", cfg.DSN).Msg("connected to database successfully")

	return newDB(conn, migrations.DialectSQLite, sq.Question, NewSQLiteErrorClassifier(), log), nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// sqliteDSN adds the default pragmas to a bare file path. DSNs that already
// carry parameters are used as given.
func sqliteDSN(dsn string) string {
	if isMemoryDSN(dsn) || strings.Contains(dsn, "?") {
		return dsn
	}
	return dsn + "?" + strings.Join(sqlitePragmas, "&")
}

func ensureDBDir(dsn string) error {
	if isMemoryDSN(dsn) {
		return nil
	}
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating DB dir: %w", err)
	}
	return nil
}
