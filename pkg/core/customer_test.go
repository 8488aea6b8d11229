package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContactMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    ContactMethod
		wantErr bool
	}{
		{input: "Email", want: ContactEmail},
		{input: "email", want: ContactEmail},
		{input: "PHONE", want: ContactPhone},
		{input: "  Mail ", want: ContactMail},
		{input: "fax", wantErr: true},
		{input: "", wantErr: true},
		{input: "E-mail", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseContactMethod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownContactMethod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContactMethod_UnmarshalText(t *testing.T) {
	var m ContactMethod
	require.NoError(t, m.UnmarshalText([]byte("phone")))
	assert.Equal(t, ContactPhone, m)

	err := m.UnmarshalText([]byte("pigeon"))
	assert.ErrorIs(t, err, ErrUnknownContactMethod)
	assert.Equal(t, ContactPhone, m, "failed unmarshal must not change the value")
}

func TestContactMethod_Next(t *testing.T) {
	assert.Equal(t, ContactPhone, ContactEmail.Next())
	assert.Equal(t, ContactMail, ContactPhone.Next())
	assert.Equal(t, ContactEmail, ContactMail.Next())
	assert.Equal(t, ContactEmail, ContactMethod("").Next())
	assert.False(t, ContactMethod("Fax").Valid())
}

func TestCustomer_Cells(t *testing.T) {
	c := Customer{
		ID:               42,
		Name:             "Jane Smith",
		Birthday:         "02/29/2020",
		Email:            "jane@smith.com",
		Phone:            "555-123-4567",
		Address:          "1 Main St",
		PreferredContact: ContactPhone,
		DateAdded:        time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	cells := c.Cells()
	require.Len(t, cells, len(Columns))
	assert.Equal(t, []string{
		"42", "Jane Smith", "02/29/2020", "jane@smith.com", "555-123-4567",
		"1 Main St", "Phone", "2024-03-01 09:30:00",
	}, cells)

	assert.Empty(t, Customer{}.DateAddedString())
}

func TestCustomer_MatchesTerm(t *testing.T) {
	john := Customer{Name: "John Doe", Email: "john@doe.com", Phone: "555-000-1111"}
	amy := Customer{Name: "Amy Lee", Email: "amyjo@x.com", Phone: "555-222-3333"}
	bob := Customer{Name: "Bob Ray", Email: "bob@ray.com", Phone: "555-444-5555"}

	tests := []struct {
		term string
		want []Customer
	}{
		{term: "jo", want: []Customer{john, amy}},
		{term: "JO", want: []Customer{john, amy}},
		{term: "444-5555", want: []Customer{bob}},
		{term: "4444", want: []Customer{}},
		{term: "", want: []Customer{john, amy, bob}},
		{term: "zzz", want: []Customer{}},
		{term: "%", want: []Customer{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := FilterCustomers([]Customer{john, amy, bob}, tt.term)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCustomer_MatchesName(t *testing.T) {
	c := Customer{Name: "José Ñúñez", Email: "jn@example.com", Phone: "555-666-7777"}

	assert.True(t, c.MatchesName("JOSÉ"))
	assert.True(t, c.MatchesName("ñúñez"))
	assert.True(t, c.MatchesName(""))
	assert.False(t, c.MatchesName("example"), "email is not part of the name")
	assert.True(t, c.MatchesTerm("ÑÚÑ"))
}

func TestSubmission_NormalizeAndConvert(t *testing.T) {
	sub := Submission{
		Name:             "  Jane Smith ",
		Birthday:         " 02/29/2020",
		Email:            "jane@smith.com ",
		Phone:            "\t555-123-4567",
		Address:          "1 Main St\n",
		PreferredContact: " phone ",
	}

	norm := sub.Normalize()
	assert.Equal(t, Submission{
		Name:             "Jane Smith",
		Birthday:         "02/29/2020",
		Email:            "jane@smith.com",
		Phone:            "555-123-4567",
		Address:          "1 Main St",
		PreferredContact: "phone",
	}, norm)

	nc, err := norm.ToNewCustomer()
	require.NoError(t, err)
	assert.Equal(t, ContactPhone, nc.PreferredContact)
	assert.Equal(t, "Jane Smith", nc.Name)

	_, err = Submission{PreferredContact: "telegram"}.ToNewCustomer()
	assert.ErrorIs(t, err, ErrUnknownContactMethod)
}

func TestParseOrder(t *testing.T) {
	for _, s := range []string{"", "asc", "ASC", "ascending"} {
		o, err := ParseOrder(s)
		require.NoError(t, err)
		assert.Equal(t, OrderAscending, o)
	}
	for _, s := range []string{"desc", "Descending"} {
		o, err := ParseOrder(s)
		require.NoError(t, err)
		assert.Equal(t, OrderDescending, o)
	}
	_, err := ParseOrder("random")
	assert.Error(t, err)
	assert.Equal(t, "desc", OrderDescending.String())
}
