// Package core defines the shared language of custdb.
//
// This package contains:
//   - Domain entities (Customer, ContactMethod, Submission, Summary)
//   - The record store interface (Store)
//   - The error taxonomy (ValidationError, StorageError, NotFoundError)
//
// pkg/core imports only stdlib and golang.org/x/text.
// All other packages depend on core, not the reverse.
package core
