package store

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/migrations"
	"github.com/MKhiriev/go-sos-relay/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return newDB(conn, migrations.DialectPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop()), mock, conn
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func mustRecord(t *testing.T, key, ts string, fields map[string]any) models.Record {
	t.Helper()
	rec, err := models.NewRecord(key, ts, fields)
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	return rec
}
