package core

import "context"

// Store defines the record store operations.
type Store interface {
	InitSchema(ctx context.Context) error

	// Create appends a record and returns its new id.
	Create(ctx context.Context, c NewCustomer) (int64, error)
	Get(ctx context.Context, id int64) (*Customer, error)
	List(ctx context.Context, order Order) ([]Customer, error)

	// SearchSubstring matches name, email, or phone case-insensitively.
	SearchSubstring(ctx context.Context, term string) ([]Customer, error)
	// SearchNameLike matches the name only.
	SearchNameLike(ctx context.Context, term string) ([]Customer, error)

	// Delete reports whether a row was removed. A missing id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
	Summary(ctx context.Context) (Summary, error)
}

// Runner runs fn against an open Store and releases it afterwards.
type Runner interface {
	Do(ctx context.Context, fn func(Store) error) error
}
