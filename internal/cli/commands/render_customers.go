package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/leapstack-labs/custdb/internal/cli/output"
	"github.com/leapstack-labs/custdb/pkg/core"
)

const (
	listRuleWidth    = 80
	summaryRuleWidth = 50
)

// renderCustomerBlock writes one customer as labeled lines.
func renderCustomerBlock(r *output.Renderer, c core.Customer) {
	for i, cell := range c.Cells() {
		r.Printf("%s %s\n", r.Label(core.Labels[i]+":"), cell)
	}
}

// renderCustomerList writes the full listing in the renderer's mode.
func renderCustomerList(r *output.Renderer, customers []core.Customer) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(customers)
	case output.ModeYAML:
		return r.YAML(customers)
	}

	if len(customers) == 0 {
		r.Println("No customers found in the database.")
		return nil
	}

	switch r.EffectiveMode() {
	case output.ModeTable:
		r.Table(core.Columns, customerRows(customers))
		r.Printf("(%d records)\n", len(customers))
	case output.ModeMarkdown:
		r.Header(1, fmt.Sprintf("Customers (%d total)", len(customers)))
		r.Println("")
		r.MarkdownTable(core.Columns, customerRows(customers))
	default:
		r.Println("")
		r.Println(strings.Repeat("=", listRuleWidth))
		r.Header(1, fmt.Sprintf("CUSTOMER DATABASE - Total Records: %d", len(customers)))
		r.Println(strings.Repeat("=", listRuleWidth))
		r.Println("")
		for _, c := range customers {
			renderCustomerBlock(r, c)
			r.Println(strings.Repeat("-", listRuleWidth))
			r.Println("")
		}
	}
	return nil
}

// renderCustomer writes a single customer.
func renderCustomer(r *output.Renderer, c core.Customer) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(c)
	case output.ModeYAML:
		return r.YAML(c)
	case output.ModeTable:
		r.Table(core.Columns, customerRows([]core.Customer{c}))
	case output.ModeMarkdown:
		r.Header(1, c.Name)
		for i, cell := range c.Cells() {
			r.Println(output.FormatKeyValue(core.Labels[i], cell))
		}
	default:
		renderCustomerBlock(r, c)
	}
	return nil
}

// renderSearchHits writes search results as one line per customer.
func renderSearchHits(r *output.Renderer, term string, hits []core.Customer) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(hits)
	case output.ModeYAML:
		return r.YAML(hits)
	}

	if len(hits) == 0 {
		r.Printf("No customers found matching '%s'\n", term)
		return nil
	}

	switch r.EffectiveMode() {
	case output.ModeTable:
		rows := make([][]string, 0, len(hits))
		for _, c := range hits {
			rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Name, c.Email})
		}
		r.Table([]string{"ID", "Name", "Email"}, rows)
	case output.ModeMarkdown:
		r.Header(1, fmt.Sprintf("Found %d customer(s)", len(hits)))
		r.Println("")
		for _, c := range hits {
			r.Printf("- %d: %s <%s>\n", c.ID, c.Name, c.Email)
		}
	default:
		r.Println("")
		r.Printf("Found %d customer(s):\n", len(hits))
		r.Println("")
		for _, c := range hits {
			r.Printf("ID: %d | Name: %s | Email: %s\n", c.ID, c.Name, c.Email)
		}
	}
	return nil
}

// summaryMethods returns the methods present in s: known ones in display
// order, then any others alphabetically.
func summaryMethods(s core.Summary) []core.ContactMethod {
	methods := make([]core.ContactMethod, 0, len(s.ByContact))
	for _, m := range core.ContactMethods {
		if _, ok := s.ByContact[m]; ok {
			methods = append(methods, m)
		}
	}
	var others []core.ContactMethod
	for m := range s.ByContact {
		if !m.Valid() {
			others = append(others, m)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i] < others[j] })
	return append(methods, others...)
}

// renderSummary writes the store summary.
func renderSummary(r *output.Renderer, s core.Summary) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(s)
	case output.ModeYAML:
		return r.YAML(s)
	case output.ModeTable:
		rows := [][]string{{"Total", strconv.Itoa(s.Total)}}
		for _, m := range summaryMethods(s) {
			rows = append(rows, []string{m.String(), strconv.Itoa(s.ByContact[m])})
		}
		r.Table([]string{"Preferred Contact", "Customers"}, rows)
	case output.ModeMarkdown:
		r.Header(1, "Database Summary")
		r.Println("")
		r.Println(output.FormatKeyValue("Total Customers", strconv.Itoa(s.Total)))
		for _, m := range summaryMethods(s) {
			r.Println(output.FormatKeyValue(m.String(), strconv.Itoa(s.ByContact[m])))
		}
	default:
		r.Println("")
		r.Println(strings.Repeat("=", summaryRuleWidth))
		r.Header(1, "DATABASE SUMMARY")
		r.Println(strings.Repeat("=", summaryRuleWidth))
		r.Printf("Total Customers: %d\n", s.Total)
		r.Println("")
		r.Println("Preferred Contact Methods:")
		for _, m := range summaryMethods(s) {
			r.Printf("  %s: %d\n", m, s.ByContact[m])
		}
		r.Println(strings.Repeat("=", summaryRuleWidth))
		r.Println("")
	}
	return nil
}

func customerRows(customers []core.Customer) [][]string {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, c.Cells())
	}
	return rows
}
