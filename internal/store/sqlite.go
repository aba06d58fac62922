package store

import (
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// timestampLayout is the local-time, second-precision format used for
// created_at columns. Its lexicographic order matches chronological order,
// which the created_at sort clauses rely on.
const timestampLayout = "2006-01-02 15:04:05"

// SQLiteStore implements Store over a single SQLite database file.
//
// One mutex serializes every operation, so at most one statement runs
// against the database at a time; the store does not rely on SQLite's own
// locking. Multi-step operations (order-index allocation in CreateTask,
// the read-then-flip in ToggleTodo) run under a single lock acquisition,
// except AddTaskToTodo which deliberately releases the lock between its
// title read and the todo insert.
type SQLiteStore struct {
	mu sync.Mutex
	db *sqlx.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at dbPath, enables WAL
// mode and foreign keys, and applies the idempotent schema.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, storageError("opening sqlite db", err)
	}

	// All access is serialized behind the mutex anyway; a single
	// connection also keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, storageError("enabling WAL mode", err)
	}

	// The cascade and set-null rules live in the schema; they only fire
	// with foreign keys on.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, storageError("enabling foreign keys", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, storageError("initializing schema", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// timestamp returns the current local time formatted for created_at columns.
func timestamp() string {
	return time.Now().Format(timestampLayout)
}
