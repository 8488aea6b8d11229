package state

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/custdb/pkg/core"
)

// Opener scopes store access to a single operation. Every Do call opens the
// database, runs the callback and closes it again, so no handle is held
// while a user is thinking.
type Opener struct {
	Path     string
	ReadOnly bool
	Logger   *slog.Logger
}

// Do opens the store, runs fn and closes the store. Writable opens create
// the parent directory and the schema when missing.
func (o Opener) Do(ctx context.Context, fn func(core.Store) error) (err error) {
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	store := NewSQLiteStore()
	if o.ReadOnly {
		err = store.OpenReadOnly(o.Path)
	} else {
		if mkErr := ensureDir(o.Path); mkErr != nil {
			return core.NewStorageError("create database directory", mkErr)
		}
		err = store.Open(o.Path)
	}
	if err != nil {
		return err
	}
	logger.Debug("opened database", "path", store.Path(), "read_only", store.ReadOnly())

	defer func() {
		closeErr := store.Close()
		logger.Debug("closed database", "path", store.Path())
		if err == nil {
			err = closeErr
		}
	}()

	if !store.ReadOnly() {
		if err := store.InitSchema(ctx); err != nil {
			return err
		}
	}

	return fn(store)
}

// Exists reports whether the database file is present.
func (o Opener) Exists() bool {
	if o.Path == ":memory:" {
		return true
	}
	_, err := os.Stat(o.Path)
	return !errors.Is(err, os.ErrNotExist)
}

func ensureDir(path string) error {
	if path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0750)
}
var _ core.Runner = Opener{}
