package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrRoomNotFound is returned when no room with the requested id exists,
	// or when no room has been saved yet.
	ErrRoomNotFound = errors.New("room was not found")

	// ErrRoomAlreadyExists is returned by CreateRoom when the id is taken.
	ErrRoomAlreadyExists = errors.New("room already exists")

	// ErrUnknownDriver is returned when the configured storage driver is not
	// supported.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrCorruptedReplica is returned when a persisted record cannot be decoded.
	ErrCorruptedReplica = errors.New("persisted replica is corrupted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")
)
