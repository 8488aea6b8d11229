package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// =============================================================================
// ContactMethod
// =============================================================================

// ContactMethod is the customer's preferred way of being contacted.
type ContactMethod string

// The closed set of contact methods.
const (
	ContactEmail ContactMethod = "Email"
	ContactPhone ContactMethod = "Phone"
	ContactMail  ContactMethod = "Mail"
)

// ContactMethods lists every contact method in display order.
var ContactMethods = []ContactMethod{ContactEmail, ContactPhone, ContactMail}

// ParseContactMethod converts a string to a ContactMethod, ignoring letter case.
func ParseContactMethod(s string) (ContactMethod, error) {
	normalized := ContactMethod(cases.Title(language.English).String(strings.TrimSpace(s)))
	for _, m := range ContactMethods {
		if m == normalized {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownContactMethod, s)
}

// String returns the display name of the contact method.
func (m ContactMethod) String() string {
	return string(m)
}

// Valid reports whether m is one of the known contact methods.
func (m ContactMethod) Valid() bool {
	for _, known := range ContactMethods {
		if m == known {
			return true
		}
	}
	return false
}

// Next returns the method following m in display order, wrapping around.
func (m ContactMethod) Next() ContactMethod {
	for i, known := range ContactMethods {
		if m == known {
			return ContactMethods[(i+1)%len(ContactMethods)]
		}
	}
	return ContactMethods[0]
}

// MarshalText implements encoding.TextMarshaler.
func (m ContactMethod) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ContactMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseContactMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// =============================================================================
// Customer
// =============================================================================

// DateAddedLayout is the display layout of Customer.DateAdded.
const DateAddedLayout = "2006-01-02 15:04:05"

// Customer is a persisted customer contact record.
type Customer struct {
	ID               int64         `json:"id" yaml:"id"`
	Name             string        `json:"name" yaml:"name"`
	Birthday         string        `json:"birthday" yaml:"birthday"`
	Email            string        `json:"email" yaml:"email"`
	Phone            string        `json:"phone" yaml:"phone"`
	Address          string        `json:"address" yaml:"address"`
	PreferredContact ContactMethod `json:"preferred_contact" yaml:"preferred_contact"`
	DateAdded        time.Time     `json:"date_added" yaml:"date_added"`
}

// Columns are the display column titles of a Customer, in field order.
var Columns = []string{"ID", "Name", "Birthday", "Email", "Phone", "Address", "Contact", "Date Added"}

// Labels are the field labels used by block-formatted output, in field order.
var Labels = []string{"ID", "Name", "Birthday", "Email", "Phone", "Address", "Preferred Contact", "Date Added"}

// Cells returns the display string of every column, aligned with Columns.
func (c Customer) Cells() []string {
	return []string{
		strconv.FormatInt(c.ID, 10),
		c.Name,
		c.Birthday,
		c.Email,
		c.Phone,
		c.Address,
		c.PreferredContact.String(),
		c.DateAddedString(),
	}
}

// DateAddedString formats DateAdded for display.
func (c Customer) DateAddedString() string {
	if c.DateAdded.IsZero() {
		return ""
	}
	return c.DateAdded.Format(DateAddedLayout)
}

// MatchesTerm reports whether term occurs in the name, email, or phone,
// ignoring case. An empty term matches every customer.
func (c Customer) MatchesTerm(term string) bool {
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Email), needle) ||
		strings.Contains(strings.ToLower(c.Phone), needle)
}

// MatchesName reports whether term occurs in the name, ignoring case.
func (c Customer) MatchesName(term string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(term))
}

// FilterCustomers returns the customers matching term, preserving order.
func FilterCustomers(customers []Customer, term string) []Customer {
	out := make([]Customer, 0, len(customers))
	for _, c := range customers {
		if c.MatchesTerm(term) {
			out = append(out, c)
		}
	}
	return out
}

// NewCustomer holds the validated values of a record about to be created.
type NewCustomer struct {
	Name             string
	Birthday         string
	Email            string
	Phone            string
	Address          string
	PreferredContact ContactMethod
}

// =============================================================================
// Submission
// =============================================================================

// Submission is the raw input of the intake form, one string per field.
type Submission struct {
	Name             string `validate:"notblank"`
	Birthday         string `validate:"notblank,usdate"`
	Email            string `validate:"notblank,emailaddr"`
	Phone            string `validate:"notblank,phone10"`
	Address          string `validate:"notblank"`
	PreferredContact string `validate:"notblank,contact"`
}

// Normalize returns a copy of s with surrounding whitespace removed from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:             strings.TrimSpace(s.Name),
		Birthday:         strings.TrimSpace(s.Birthday),
		Email:            strings.TrimSpace(s.Email),
		Phone:            strings.TrimSpace(s.Phone),
		Address:          strings.TrimSpace(s.Address),
		PreferredContact: strings.TrimSpace(s.PreferredContact),
	}
}

// ToNewCustomer converts a submission that already passed validation.
func (s Submission) ToNewCustomer() (NewCustomer, error) {
	method, err := ParseContactMethod(s.PreferredContact)
	if err != nil {
		return NewCustomer{}, err
	}
	return NewCustomer{
		Name:             s.Name,
		Birthday:         s.Birthday,
		Email:            s.Email,
		Phone:            s.Phone,
		Address:          s.Address,
		PreferredContact: method,
	}, nil
}

// Receipt confirms a stored submission.
type Receipt struct {
	ID   int64
	Name string
}

// =============================================================================
// Queries
// =============================================================================

// Order is the id ordering of a listing.
type Order int

// Listing orders.
const (
	OrderAscending Order = iota
	OrderDescending
)

// String returns "asc" or "desc".
func (o Order) String() string {
	if o == OrderDescending {
		return "desc"
	}
	return "asc"
}

// ParseOrder converts "asc"/"desc" (and their long forms) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return OrderAscending, nil
	case "desc", "descending":
		return OrderDescending, nil
	default:
		return OrderAscending, fmt.Errorf("unknown order %q (want asc or desc)", s)
	}
}

// Summary aggregates the store. ByContact only holds methods present in the data.
type Summary struct {
	Total     int                   `json:"total" yaml:"total"`
	ByContact map[ContactMethod]int `json:"by_contact" yaml:"by_contact"`
}
