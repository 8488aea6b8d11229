// Package state persists customer records in a local SQLite database.
//
// SQLiteStore owns the customers schema and implements core.Store. Opener
// scopes a store to a single operation: open, run, close.
package state

import "github.com/leapstack-labs/custdb/pkg/core"

var _ core.Store = (*SQLiteStore)(nil)
