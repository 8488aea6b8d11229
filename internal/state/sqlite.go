package state

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/leapstack-labs/custdb/pkg/core"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

//go:embed schema.sql
var schemaSQL string

// busyTimeoutMS bounds how long a statement waits on another process's lock.
const busyTimeoutMS = 5000

// SQLiteStore implements core.Store using SQLite.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	readOnly bool
}

// NewSQLiteStore creates a new SQLite store instance.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// NewSQLiteStoreFromDB wraps an already opened database connection.
// This is useful for testing with a mocked driver.
func NewSQLiteStoreFromDB(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Open opens (creating if needed) the database at path.
// Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	return s.open(path, false)
}

// OpenReadOnly opens an existing database without write access.
// A missing file is reported as core.ErrStoreMissing rather than created.
func (s *SQLiteStore) OpenReadOnly(path string) error {
	if path != ":memory:" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return core.NewStorageError("open database", fmt.Errorf("%w: %s", core.ErrStoreMissing, path))
		}
	}
	return s.open(path, true)
}

func (s *SQLiteStore) open(path string, readOnly bool) error {
	dsn := buildDSN(path, readOnly)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return core.NewStorageError("open sqlite database", err)
	}

	// One connection keeps ":memory:" databases shared and writes serialized.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return core.NewStorageError("ping sqlite database", err)
	}

	s.db = db
	s.path = path
	s.readOnly = readOnly
	return nil
}

func buildDSN(path string, readOnly bool) string {
	pragmas := fmt.Sprintf("_pragma=busy_timeout(%d)", busyTimeoutMS)
	if path == ":memory:" {
		return ":memory:?" + pragmas
	}
	dsn := "file:" + path + "?" + pragmas
	if readOnly {
		dsn += "&mode=ro"
	}
	return dsn
}

// Path returns the path the store was opened with.
func (s *SQLiteStore) Path() string {
	return s.path
}

// ReadOnly reports whether the store was opened read-only.
func (s *SQLiteStore) ReadOnly() bool {
	return s.readOnly
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return core.NewStorageError("close database", err)
	}
	return nil
}

// InitSchema creates the customers table if it does not exist.
func (s *SQLiteStore) InitSchema(ctx context.Context) error {
	if s.db == nil {
		return core.NewStorageError("initialize schema", core.ErrStoreNotOpen)
	}

	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return core.NewStorageError("initialize schema", err)
	}
	return nil
}
