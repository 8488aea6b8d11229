package core

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrStoreMissing is returned when a read-only open finds no database file.
	ErrStoreMissing = errors.New("database file not found")
	// ErrStoreNotOpen is returned when a store is used before Open.
	ErrStoreNotOpen = errors.New("database not opened")
	// ErrUnknownContactMethod is returned for values outside Email, Phone, Mail.
	ErrUnknownContactMethod = errors.New("unknown contact method")
)

// =============================================================================
// ValidationError
// =============================================================================

// Rule identifies which validation rule a field failed.
type Rule int

// Rules in reporting precedence order.
const (
	RuleRequired Rule = iota
	RuleDate
	RuleEmail
	RulePhone
	RuleContact
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleRequired:
		return "required"
	case RuleDate:
		return "date"
	case RuleEmail:
		return "email"
	case RulePhone:
		return "phone"
	case RuleContact:
		return "contact"
	default:
		return "unknown"
	}
}

// Message returns the user-facing message for the rule.
func (r Rule) Message() string {
	switch r {
	case RuleRequired:
		return "All fields are required!"
	case RuleDate:
		return "Invalid birthday format. Use MM/DD/YYYY"
	case RuleEmail:
		return "Invalid email format!"
	case RulePhone:
		return "Invalid phone number. Use 10 digits (e.g., xxx-xxx-xxxx)"
	case RuleContact:
		return "Invalid preferred contact. Use Email, Phone, or Mail"
	default:
		return "Invalid input"
	}
}

// FieldFailure is one failing field.
type FieldFailure struct {
	Field string
	Rule  Rule
}

// Message returns the user-facing message for the failure.
func (f FieldFailure) Message() string {
	return f.Rule.Message()
}

// ValidationError reports user-correctable input problems. Failures are
// ordered by rule precedence, so the first one is what a caller showing a
// single message should display.
type ValidationError struct {
	Failures []FieldFailure
}

func (e *ValidationError) Error() string {
	if len(e.Failures) == 0 {
		return "validation failed"
	}
	return e.Failures[0].Message()
}

// First returns the highest-precedence failure.
func (e *ValidationError) First() FieldFailure {
	if len(e.Failures) == 0 {
		return FieldFailure{}
	}
	return e.Failures[0]
}

// Has reports whether field failed any rule.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Failures {
		if f.Field == field {
			return true
		}
	}
	return false
}

// =============================================================================
// StorageError
// =============================================================================

// StorageError wraps an I/O or schema failure of the record store. The
// underlying message is kept verbatim.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err, returning nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// =============================================================================
// NotFoundError
// =============================================================================

// NotFoundError reports a customer id that does not exist.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No customer with ID %d", e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
