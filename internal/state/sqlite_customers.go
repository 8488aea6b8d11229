package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/leapstack-labs/custdb/pkg/core"
)

const customerColumns = `id, name, birthday, email, phone, address, preferred_contact, date_added`

// Create appends a customer and returns its new id. Identical input twice
// yields two records.
func (s *SQLiteStore) Create(ctx context.Context, c core.NewCustomer) (int64, error) {
	if s.db == nil {
		return 0, core.NewStorageError("create customer", core.ErrStoreNotOpen)
	}
	if !c.PreferredContact.Valid() {
		return 0, fmt.Errorf("%w: %q", core.ErrUnknownContactMethod, c.PreferredContact)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO customers (name, birthday, email, phone, address, preferred_contact)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, c.Birthday, c.Email, c.Phone, c.Address, string(c.PreferredContact),
	)
	if err != nil {
		return 0, core.NewStorageError("create customer", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, core.NewStorageError("read new customer id", err)
	}
	return id, nil
}

// Get retrieves a customer by id.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (*core.Customer, error) {
	if s.db == nil {
		return nil, core.NewStorageError("get customer", core.ErrStoreNotOpen)
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = ?`, id)

	c, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &core.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, core.NewStorageError("get customer", err)
	}
	return &c, nil
}

// List returns every customer ordered by id.
func (s *SQLiteStore) List(ctx context.Context, order core.Order) ([]core.Customer, error) {
	direction := "ASC"
	if order == core.OrderDescending {
		direction = "DESC"
	}
	return s.query(ctx, "list customers",
		`SELECT `+customerColumns+` FROM customers ORDER BY id `+direction)
}

// SearchSubstring returns customers whose name, email, or phone contains term,
// ignoring case, most recent first. Matching happens in Go so the semantics
// are the same as the viewer's filter over its snapshot.
func (s *SQLiteStore) SearchSubstring(ctx context.Context, term string) ([]core.Customer, error) {
	all, err := s.List(ctx, core.OrderDescending)
	if err != nil {
		return nil, err
	}
	return core.FilterCustomers(all, term), nil
}

// SearchNameLike returns customers whose name contains term, ignoring case,
// ordered by id. The term is a literal substring. Matching happens in Go
// because SQLite's LIKE only folds ASCII letters.
func (s *SQLiteStore) SearchNameLike(ctx context.Context, term string) ([]core.Customer, error) {
	all, err := s.query(ctx, "search customers",
		`SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	matches := make([]core.Customer, 0, len(all))
	for _, c := range all {
		if c.MatchesName(term) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// Delete removes the customer with the given id and reports whether a row
// was removed.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) (bool, error) {
	if s.db == nil {
		return false, core.NewStorageError("delete customer", core.ErrStoreNotOpen)
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return false, core.NewStorageError("delete customer", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, core.NewStorageError("delete customer", err)
	}
	return rowsAffected > 0, nil
}

// Summary counts all customers and groups them by preferred contact method.
func (s *SQLiteStore) Summary(ctx context.Context) (core.Summary, error) {
	summary := core.Summary{ByContact: make(map[core.ContactMethod]int)}
	if s.db == nil {
		return summary, core.NewStorageError("summarize customers", core.ErrStoreNotOpen)
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&summary.Total); err != nil {
		return summary, core.NewStorageError("count customers", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT preferred_contact, COUNT(*) FROM customers GROUP BY preferred_contact`)
	if err != nil {
		return summary, core.NewStorageError("summarize customers", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var method string
		var count int
		if err := rows.Scan(&method, &count); err != nil {
			return summary, core.NewStorageError("summarize customers", err)
		}
		summary.ByContact[core.ContactMethod(method)] = count
	}
	if err := rows.Err(); err != nil {
		return summary, core.NewStorageError("summarize customers", err)
	}

	return summary, nil
}

// query runs a SELECT over customerColumns and collects the rows.
// The result is never nil.
func (s *SQLiteStore) query(ctx context.Context, op, query string, args ...any) ([]core.Customer, error) {
	if s.db == nil {
		return nil, core.NewStorageError(op, core.ErrStoreNotOpen)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, core.NewStorageError(op, err)
	}
	defer func() { _ = rows.Close() }()

	customers := []core.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, core.NewStorageError(op, err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, core.NewStorageError(op, err)
	}

	return customers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (core.Customer, error) {
	var c core.Customer
	var method string
	var added timestamp

	if err := row.Scan(&c.ID, &c.Name, &c.Birthday, &c.Email, &c.Phone, &c.Address, &method, &added); err != nil {
		return core.Customer{}, err
	}

	// Rows written by other tools may carry any casing; keep unknown values
	// verbatim so they still show up in listings.
	if parsed, err := core.ParseContactMethod(method); err == nil {
		c.PreferredContact = parsed
	} else {
		c.PreferredContact = core.ContactMethod(method)
	}
	c.DateAdded = added.Time
	return c, nil
}

// timestampLayouts are the text forms SQLite timestamps are stored in.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// timestamp scans the date_added column whether the driver hands it over
// as time.Time, text, or unix seconds.
type timestamp struct {
	Time time.Time
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case int64:
		t.Time = time.Unix(v, 0).UTC()
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}
