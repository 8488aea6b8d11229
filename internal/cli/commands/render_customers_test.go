package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/leapstack-labs/custdb/internal/cli/output"
	"github.com/leapstack-labs/custdb/internal/cli/testutil"
	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var renderFixture = []core.Customer{
	{
		ID:               1,
		Name:             "Pipe | Name",
		Birthday:         "01/15/1990",
		Email:            "pipe@example.com",
		Phone:            "555-123-4567",
		Address:          "1 Main St\nApt 2",
		PreferredContact: core.ContactEmail,
		DateAdded:        time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	},
	{
		ID:               2,
		Name:             "Amy Lee",
		Birthday:         "07/04/1985",
		Email:            "amy.lee@mail.org",
		Phone:            "(555) 987-6543",
		Address:          "22 Oak Ave",
		PreferredContact: core.ContactPhone,
	},
}

func TestRenderCustomerList_Markdown(t *testing.T) {
	tr := testutil.NewTestRendererMarkdown()

	require.NoError(t, renderCustomerList(tr.Renderer, renderFixture))

	out := tr.Output()
	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "# Customers (2 total)")
	assert.Contains(t, out, `Pipe \| Name`)
	assert.Contains(t, out, "1 Main St<br>Apt 2")
	assert.Contains(t, out, "2024-03-01 09:30:00")
}

func TestRenderCustomerList_StyledText(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "1")
	tr := testutil.NewTestRendererText()
	require.True(t, tr.Styled())

	require.NoError(t, renderCustomerList(tr.Renderer, renderFixture[1:]))

	plain := testutil.StripANSI(tr.Output())
	assert.Contains(t, plain, "CUSTOMER DATABASE - Total Records: 1\n")
	assert.Contains(t, plain, "Email: amy.lee@mail.org\n")
	assert.Contains(t, plain, "Date Added: \n")
}

func TestRenderCustomerList_Table(t *testing.T) {
	tr := testutil.NewTestRenderer(output.ModeTable, false)

	require.NoError(t, renderCustomerList(tr.Renderer, renderFixture[1:]))

	out := tr.Output()
	testutil.AssertNoANSI(t, out)
	assert.Contains(t, out, "Amy Lee")
	assert.Contains(t, out, "DATE ADDED")
	assert.True(t, strings.HasSuffix(out, "(1 records)\n"))
}

func TestRenderSearchHits_Markdown(t *testing.T) {
	tr := testutil.NewTestRendererMarkdown()

	require.NoError(t, renderSearchHits(tr.Renderer, "a", renderFixture[1:]))
	assert.Equal(t, "# Found 1 customer(s)\n\n- 2: Amy Lee <amy.lee@mail.org>\n", tr.Output())

	tr.Reset()
	require.NoError(t, renderSearchHits(tr.Renderer, "zzz", nil))
	assert.Equal(t, "No customers found matching 'zzz'\n", tr.Output())
}

func TestSummaryMethods(t *testing.T) {
	s := core.Summary{
		Total: 6,
		ByContact: map[core.ContactMethod]int{
			"Pigeon":          1,
			core.ContactMail:  2,
			"Fax":             1,
			core.ContactEmail: 2,
		},
	}

	assert.Equal(t,
		[]core.ContactMethod{core.ContactEmail, core.ContactMail, "Fax", "Pigeon"},
		summaryMethods(s))
}

func TestRenderSummary_Markdown(t *testing.T) {
	tr := testutil.NewTestRendererMarkdown()

	require.NoError(t, renderSummary(tr.Renderer, core.Summary{
		Total:     3,
		ByContact: map[core.ContactMethod]int{core.ContactPhone: 1, core.ContactEmail: 2},
	}))

	want := "# Database Summary\n\n" +
		"- **Total Customers:** 3\n" +
		"- **Email:** 2\n" +
		"- **Phone:** 1\n"
	assert.Equal(t, want, tr.Output())
	testutil.AssertValidMarkdown(t, tr.Output())
}
