package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	recordsTable = "records"
	roomsTable   = "rooms"
)

func (db *DB) buildLoadReplicaQuery(namespace, collection string) (string, []any, error) {
	return db.builder.
		Select("record_key", "payload").
		From(recordsTable).
		Where(sq.Eq{"namespace": namespace, "collection": collection}).
		OrderBy("record_key").
		ToSql()
}

func (db *DB) buildDeleteReplicaQuery(namespace, collection string) (string, []any, error) {
	return db.builder.
		Delete(recordsTable).
		Where(sq.Eq{"namespace": namespace, "collection": collection}).
		ToSql()
}

func (db *DB) buildInsertRecordQuery(namespace, collection, key, ts, payload string) (string, []any, error) {
	return db.builder.
		Insert(recordsTable).
		Columns("namespace", "collection", "record_key", "ts", "payload").
		Values(namespace, collection, key, ts, payload).
		ToSql()
}

func (db *DB) buildCreateRoomQuery(roomID, key string) (string, []any, error) {
	return db.builder.
		Insert(roomsTable).
		Columns("id", "room_key").
		Values(roomID, key).
		ToSql()
}

// buildSaveRoomQuery upserts the room. The ON CONFLICT clause is understood
// by PostgreSQL and by SQLite 3.24+.
func (db *DB) buildSaveRoomQuery(roomID, key string, at time.Time) (string, []any, error) {
	return db.builder.
		Insert(roomsTable).
		Columns("id", "room_key", "updated_at").
		Values(roomID, key, at).
		Suffix("ON CONFLICT (id) DO UPDATE SET room_key = excluded.room_key, updated_at = excluded.updated_at").
		ToSql()
}

func (db *DB) buildGetRoomQuery(roomID string) (string, []any, error) {
	return db.builder.
		Select("id", "room_key").
		From(roomsTable).
		Where(sq.Eq{"id": roomID}).
		ToSql()
}

func (db *DB) buildCurrentRoomQuery() (string, []any, error) {
	return db.builder.
		Select("id", "room_key").
		From(roomsTable).
		OrderBy("updated_at DESC", "created_at DESC").
		Limit(1).
		ToSql()
}
