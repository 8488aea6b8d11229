// Package browse holds the record viewer's state: a snapshot of the store,
// the current search filter and sort, and helpers for keeping it fresh.
package browse

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/custdb/pkg/core"
)

// Session is a filtered, sortable view over a snapshot of all customers.
// It loads once and filters in memory; call Load again to pick up changes
// made elsewhere. A Session is not safe for concurrent use.
type Session struct {
	reader core.Runner
	writer core.Runner

	snapshot []core.Customer
	visible  []core.Customer
	term     string
	// filtered is set once a filter has been applied to the current
	// snapshot, even if it was cleared back to empty.
	filtered bool

	sortColumn int
	sortDesc   bool
}

// NewSession creates an empty session that loads through reader and
// deletes through writer.
func NewSession(reader, writer core.Runner) *Session {
	return &Session{
		reader:     reader,
		writer:     writer,
		sortColumn: -1,
	}
}

// Load replaces the snapshot with the current store contents, most recent
// first, and reapplies the filter and sort.
func (s *Session) Load(ctx context.Context) error {
	var rows []core.Customer
	err := s.reader.Do(ctx, func(store core.Store) error {
		var err error
		rows, err = store.List(ctx, core.OrderDescending)
		return err
	})
	if err != nil {
		return err
	}
	s.snapshot = rows
	s.filtered = s.term != ""
	s.refresh()
	return nil
}

// Filter shows only customers whose name, email, or phone contains term.
// An empty term shows everything.
func (s *Session) Filter(term string) {
	s.term = term
	s.filtered = true
	s.refresh()
}

// Term returns the active filter.
func (s *Session) Term() string {
	return s.term
}

// Visible returns the rows currently shown, in display order.
func (s *Session) Visible() []core.Customer {
	return s.visible
}

// Total returns the number of customers in the snapshot.
func (s *Session) Total() int {
	return len(s.snapshot)
}

// Status describes the visible rows for the status bar. A fresh load reports
// the total; once filtered it reports visible against total.
func (s *Session) Status() string {
	if !s.filtered {
		return fmt.Sprintf("Total records: %d", len(s.snapshot))
	}
	return fmt.Sprintf("Showing %d of %d records", len(s.visible), len(s.snapshot))
}

// Find returns the snapshot row with the given id.
func (s *Session) Find(id int64) (core.Customer, bool) {
	for _, c := range s.snapshot {
		if c.ID == id {
			return c, true
		}
	}
	return core.Customer{}, false
}

// SortBy orders the visible rows by the given column index of core.Columns.
// Choosing the active column again flips the direction.
func (s *Session) SortBy(column int) error {
	if column < 0 || column >= len(core.Columns) {
		return fmt.Errorf("sort column %d out of range", column)
	}
	if column == s.sortColumn {
		s.sortDesc = !s.sortDesc
	} else {
		s.sortColumn = column
		s.sortDesc = false
	}
	SortCustomers(s.visible, column, s.sortDesc)
	return nil
}

// SortState returns the active sort column (-1 when unsorted) and direction.
func (s *Session) SortState() (column int, descending bool) {
	return s.sortColumn, s.sortDesc
}

// Delete removes a customer and reloads the snapshot. It reports whether a
// record was removed.
func (s *Session) Delete(ctx context.Context, id int64) (bool, error) {
	var removed bool
	err := s.writer.Do(ctx, func(store core.Store) error {
		var err error
		removed, err = store.Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, err
	}
	return removed, s.Load(ctx)
}

func (s *Session) refresh() {
	s.visible = core.FilterCustomers(s.snapshot, s.term)
	if s.sortColumn >= 0 {
		SortCustomers(s.visible, s.sortColumn, s.sortDesc)
	}
}
