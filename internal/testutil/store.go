package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/custdb/internal/state"
	"github.com/leapstack-labs/custdb/pkg/core"
)

// NewTestOpener returns an Opener for a fresh database file under t.TempDir().
// The file does not exist until the first writable Do.
func NewTestOpener(t testing.TB) state.Opener {
	t.Helper()
	return state.Opener{
		Path:   filepath.Join(t.TempDir(), "customers.db"),
		Logger: NewTestLogger(t),
	}
}

// SampleCustomers are three valid records, one per contact method.
var SampleCustomers = []core.NewCustomer{
	{
		Name:             "John Doe",
		Birthday:         "01/15/1990",
		Email:            "john@example.com",
		Phone:            "555-123-4567",
		Address:          "1 Main St",
		PreferredContact: core.ContactEmail,
	},
	{
		Name:             "Amy Lee",
		Birthday:         "07/04/1985",
		Email:            "amy.lee@mail.org",
		Phone:            "(555) 987-6543",
		Address:          "22 Oak Ave",
		PreferredContact: core.ContactPhone,
	},
	{
		Name:             "Bob Ray",
		Birthday:         "12/31/1979",
		Email:            "bob@ray.com",
		Phone:            "5550001111",
		Address:          "9 Elm Rd",
		PreferredContact: core.ContactMail,
	},
}

// SeedCustomers writes records through opener and returns their ids in
// insertion order.
func SeedCustomers(t testing.TB, opener state.Opener, customers ...core.NewCustomer) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(customers))
	err := opener.Do(context.Background(), func(store core.Store) error {
		for _, c := range customers {
			id, err := store.Create(context.Background(), c)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to seed customers: %v", err)
	}
	return ids
}
