// Package testutil provides shared helpers for store-backed tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/example/todowbs/internal/store"
)

// NewStore creates a file-backed SQLiteStore in a temporary directory and
// closes it when the test finishes. The database path is returned for tests
// that need a direct handle on the file.
func NewStore(t *testing.T) (*store.SQLiteStore, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s, dbPath
}

// OpenRawDB opens a direct database connection, bypassing the store, for
// schema checks and fixture surgery (e.g. rewriting created_at values to
// make ordering deterministic).
func OpenRawDB(t *testing.T, dbPath string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("opening db directly: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetCreatedAt rewrites the created_at of one row, identified by id, in the
// given table.
func SetCreatedAt(t *testing.T, db *sql.DB, table, id, createdAt string) {
	t.Helper()

	res, err := db.Exec("UPDATE "+table+" SET created_at = ? WHERE id = ?", createdAt, id)
	if err != nil {
		t.Fatalf("rewriting created_at in %s: %v", table, err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		t.Fatalf("rewriting created_at in %s: %d rows affected, want 1", table, n)
	}
}
