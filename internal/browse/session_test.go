package browse

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leapstack-labs/custdb/internal/state"
	"github.com/leapstack-labs/custdb/internal/testutil"
	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleIDs(s *Session) []int64 {
	ids := []int64{}
	for _, c := range s.Visible() {
		ids = append(ids, c.ID)
	}
	return ids
}

// readerFor returns a read-only opener on the same database as writer.
func readerFor(writer state.Opener) state.Opener {
	reader := writer
	reader.ReadOnly = true
	return reader
}

func loadedSession(t *testing.T) (*Session, []int64) {
	t.Helper()
	opener := testutil.NewTestOpener(t)
	ids := testutil.SeedCustomers(t, opener, testutil.SampleCustomers...)

	s := NewSession(readerFor(opener), opener)
	require.NoError(t, s.Load(context.Background()))
	return s, ids
}

func TestSession_Load(t *testing.T) {
	s, _ := loadedSession(t)

	if diff := cmp.Diff([]int64{3, 2, 1}, visibleIDs(s)); diff != "" {
		t.Errorf("visible ids mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, s.Total())
	assert.Equal(t, "Total records: 3", s.Status())
}

func TestSession_LoadEmpty(t *testing.T) {
	opener := testutil.NewTestOpener(t)
	require.NoError(t, opener.Do(context.Background(), func(core.Store) error { return nil }))

	s := NewSession(readerFor(opener), opener)
	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, s.Visible())
	assert.Equal(t, "Total records: 0", s.Status())
}

func TestSession_Filter(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		want   []int64
		status string
	}{
		{name: "empty term", term: "", want: []int64{3, 2, 1}, status: "Showing 3 of 3 records"},
		{name: "name case-insensitive", term: "AMY", want: []int64{2}, status: "Showing 1 of 3 records"},
		{name: "email", term: "ray.com", want: []int64{3}, status: "Showing 1 of 3 records"},
		{name: "phone digits", term: "987", want: []int64{2}, status: "Showing 1 of 3 records"},
		{name: "shared substring", term: "o", want: []int64{3, 2, 1}, status: "Showing 3 of 3 records"},
		{name: "no match", term: "zzz", want: []int64{}, status: "Showing 0 of 3 records"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := loadedSession(t)
			s.Filter(tt.term)
			assert.Equal(t, tt.want, visibleIDs(s))
			assert.Equal(t, tt.status, s.Status())
			assert.Equal(t, tt.term, s.Term())
		})
	}
}

func TestSession_StatusAfterClearingFilter(t *testing.T) {
	s, _ := loadedSession(t)
	assert.Equal(t, "Total records: 3", s.Status())

	s.Filter("amy")
	assert.Equal(t, "Showing 1 of 3 records", s.Status())

	s.Filter("")
	assert.Equal(t, []int64{3, 2, 1}, visibleIDs(s))
	assert.Equal(t, "Showing 3 of 3 records", s.Status())

	// A reload with no active term starts over.
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, "Total records: 3", s.Status())
}

func TestSession_LoadMissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")
	writer := state.Opener{Path: path}

	s := NewSession(readerFor(writer), writer)
	err := s.Load(context.Background())
	require.ErrorIs(t, err, core.ErrStoreMissing)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "loading must not create the database")
}

func TestSession_FilterMatchesStoreSearch(t *testing.T) {
	opener := testutil.NewTestOpener(t)
	testutil.SeedCustomers(t, opener, testutil.SampleCustomers...)

	s := NewSession(readerFor(opener), opener)
	require.NoError(t, s.Load(context.Background()))

	for _, term := range []string{"jo", "555", "MAIL", "lee", ""} {
		s.Filter(term)

		var live []core.Customer
		err := opener.Do(context.Background(), func(store core.Store) error {
			var err error
			live, err = store.SearchSubstring(context.Background(), term)
			return err
		})
		require.NoError(t, err)

		if diff := cmp.Diff(live, s.Visible()); diff != "" {
			t.Errorf("term %q: snapshot filter differs from live search (-live +snapshot):\n%s", term, diff)
		}
	}
}

func TestSession_SortBy(t *testing.T) {
	s, _ := loadedSession(t)

	// Name, ascending then descending.
	require.NoError(t, s.SortBy(1))
	assert.Equal(t, []int64{2, 3, 1}, visibleIDs(s))
	col, desc := s.SortState()
	assert.Equal(t, 1, col)
	assert.False(t, desc)

	require.NoError(t, s.SortBy(1))
	assert.Equal(t, []int64{1, 3, 2}, visibleIDs(s))

	// ID is numeric.
	require.NoError(t, s.SortBy(0))
	assert.Equal(t, []int64{1, 2, 3}, visibleIDs(s))

	assert.Error(t, s.SortBy(8))
	assert.Error(t, s.SortBy(-1))
}

func TestSession_SortSurvivesFilter(t *testing.T) {
	s, _ := loadedSession(t)
	require.NoError(t, s.SortBy(0))

	s.Filter("y")
	assert.Equal(t, []int64{2, 3}, visibleIDs(s), "filter keeps the active sort")
}

func TestSession_Delete(t *testing.T) {
	s, ids := loadedSession(t)
	s.Filter("amy")

	removed, err := s.Delete(context.Background(), ids[1])
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, s.Visible())
	assert.Equal(t, "Showing 0 of 2 records", s.Status())

	removed, err = s.Delete(context.Background(), ids[1])
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSession_Find(t *testing.T) {
	s, ids := loadedSession(t)

	c, ok := s.Find(ids[0])
	require.True(t, ok)
	assert.Equal(t, "John Doe", c.Name)

	_, ok = s.Find(99)
	assert.False(t, ok)
}
