// Package validate checks raw customer input before it reaches the store.
//
// The package-level functions are pure syntax checks. Validator combines them
// into a struct-level check of core.Submission and reports every failing field,
// ordered so that the first failure is the one to show the user.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/leapstack-labs/custdb/pkg/core"
)

// BirthdayLayout is the accepted birthday format (MM/DD/YYYY).
const BirthdayLayout = "01/02/2006"

var (
	emailPattern   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneSeparator = regexp.MustCompile(`[\s\-().]`)
)

// Date reports whether s is a real calendar date in MM/DD/YYYY form.
func Date(s string) bool {
	_, err := time.Parse(BirthdayLayout, s)
	return err == nil
}

// Email reports whether s looks like local@domain.tld.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s holds exactly ten digits once spaces, hyphens,
// parentheses and periods are removed.
func Phone(s string) bool {
	cleaned := phoneSeparator.ReplaceAllString(s, "")
	if len(cleaned) != 10 {
		return false
	}
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] < '0' || cleaned[i] > '9' {
			return false
		}
	}
	return true
}

// Required reports whether every field is non-empty after trimming.
func Required(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

// Contact reports whether s names one of the contact methods.
func Contact(s string) bool {
	_, err := core.ParseContactMethod(s)
	return err == nil
}

// tagRules maps registered validator tags to failure rules.
var tagRules = map[string]core.Rule{
	"notblank":  core.RuleRequired,
	"usdate":    core.RuleDate,
	"emailaddr": core.RuleEmail,
	"phone10":   core.RulePhone,
	"contact":   core.RuleContact,
}

func stringCheck(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return check(fl.Field().String())
	}
}

// Validator checks submissions against every field rule.
type Validator struct {
	v      *validator.Validate
	fields map[string]int
}

// New creates a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	checks := map[string]func(string) bool{
		"notblank":  func(s string) bool { return Required(s) },
		"usdate":    Date,
		"emailaddr": Email,
		"phone10":   Phone,
		"contact":   Contact,
	}
	for tag, check := range checks {
		// Registration only fails on an empty tag or nil func.
		if err := v.RegisterValidation(tag, stringCheck(check)); err != nil {
			panic(err)
		}
	}

	fields := make(map[string]int)
	st := reflect.TypeOf(core.Submission{})
	for i := 0; i < st.NumField(); i++ {
		fields[st.Field(i).Name] = i
	}

	return &Validator{v: v, fields: fields}
}

// Check validates sub as given; callers normalize first. It returns nil or a
// *core.ValidationError whose failures are ordered required, date, email,
// phone, contact, with ties kept in field order.
func (val *Validator) Check(sub core.Submission) error {
	err := val.v.Struct(sub)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError only happens for non-struct input.
		return &core.ValidationError{Failures: []core.FieldFailure{{Rule: core.RuleRequired}}}
	}

	failures := make([]core.FieldFailure, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule, ok := tagRules[fe.Tag()]
		if !ok {
			rule = core.RuleRequired
		}
		failures = append(failures, core.FieldFailure{Field: fe.StructField(), Rule: rule})
	}

	sort.SliceStable(failures, func(i, j int) bool {
		if failures[i].Rule != failures[j].Rule {
			return failures[i].Rule < failures[j].Rule
		}
		return val.fields[failures[i].Field] < val.fields[failures[j].Field]
	})

	return &core.ValidationError{Failures: failures}
}
