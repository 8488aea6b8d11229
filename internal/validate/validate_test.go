package validate

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"02/29/2020", true},
		{"12/31/1999", true},
		{"01/01/0001", true},
		{"02/30/2024", false},
		{"02/29/2021", false},
		{"13/01/2020", false},
		{"00/10/2020", false},
		{"04/31/2020", false},
		{"1/02/2020", false},
		{"01/2/2020", false},
		{"01/02/20", false},
		{"2020-01-02", false},
		{"01/02/2020 ", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.input))
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a@b.com", true},
		{"a.b+c@sub.domain.co", true},
		{"first_last%tag@ex-ample.org", true},
		{"a@b", false},
		{"a@b.c", false},
		{"a@b.c0", false},
		{"@b.com", false},
		{"a@@b.com", false},
		{"a@b@c.com", false},
		{"a b@c.com", false},
		{"a@b.com\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.input))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"123-456-7890", true},
		{"(123) 456-7890", true},
		{"123.456.7890", true},
		{"1234567890", true},
		{"12345", false},
		{"123-456-789a", false},
		{"123-456-78901", false},
		{"+1 123 456 7890", false},
		{"١٢٣٤٥٦٧٨٩٠", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.input))
		})
	}
}

func TestRequired(t *testing.T) {
	assert.True(t, Required("a", "b", "c", "d", "e", "f"))
	assert.False(t, Required("a", "b", "   ", "d", "e", "f"))
	assert.False(t, Required("a", "", "c", "d", "e", "f"))
	assert.False(t, Required("\t\n"))
	assert.True(t, Required())
}

func validSubmission() core.Submission {
	return core.Submission{
		Name:             "Jane Smith",
		Birthday:         "02/29/2020",
		Email:            "jane@smith.com",
		Phone:            "555-123-4567",
		Address:          "1 Main St",
		PreferredContact: "Phone",
	}
}

func TestValidator_Check(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		mutate     func(s *core.Submission)
		wantFirst  core.Rule
		wantFields []string
	}{
		{
			name:       "blank name reported as required",
			mutate:     func(s *core.Submission) { s.Name = "   " },
			wantFirst:  core.RuleRequired,
			wantFields: []string{"Name"},
		},
		{
			name:       "invalid leap day",
			mutate:     func(s *core.Submission) { s.Birthday = "02/30/2021" },
			wantFirst:  core.RuleDate,
			wantFields: []string{"Birthday"},
		},
		{
			name:       "bad email",
			mutate:     func(s *core.Submission) { s.Email = "jane@smith" },
			wantFirst:  core.RuleEmail,
			wantFields: []string{"Email"},
		},
		{
			name:       "bad phone",
			mutate:     func(s *core.Submission) { s.Phone = "555-1234" },
			wantFirst:  core.RulePhone,
			wantFields: []string{"Phone"},
		},
		{
			name:       "unknown contact method",
			mutate:     func(s *core.Submission) { s.PreferredContact = "Fax" },
			wantFirst:  core.RuleContact,
			wantFields: []string{"PreferredContact"},
		},
		{
			name: "required wins over earlier format failures",
			mutate: func(s *core.Submission) {
				s.Birthday = "13/01/2020"
				s.Address = ""
			},
			wantFirst:  core.RuleRequired,
			wantFields: []string{"Address", "Birthday"},
		},
		{
			name: "date wins over email and phone",
			mutate: func(s *core.Submission) {
				s.Phone = "12345"
				s.Email = "nope"
				s.Birthday = "00/10/2020"
			},
			wantFirst:  core.RuleDate,
			wantFields: []string{"Birthday", "Email", "Phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			err := v.Check(sub)
			require.Error(t, err)

			var ve *core.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantFirst, ve.First().Rule)
			assert.Equal(t, tt.wantFirst.Message(), err.Error())

			fields := make([]string, 0, len(ve.Failures))
			for _, f := range ve.Failures {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidator_CheckAcceptsValid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Check(validSubmission()))

	sub := validSubmission()
	sub.PreferredContact = "mail"
	assert.NoError(t, v.Check(sub))
}
