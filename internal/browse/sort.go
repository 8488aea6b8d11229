package browse

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/leapstack-labs/custdb/pkg/core"
)

// Comparator picks how a column compares, based on all of its values:
// numerically when every value is an integer, lexically otherwise.
func Comparator(values []string) func(a, b string) int {
	for _, v := range values {
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return cmp.Compare[string]
		}
	}
	return func(a, b string) int {
		x, _ := strconv.ParseInt(a, 10, 64)
		y, _ := strconv.ParseInt(b, 10, 64)
		return cmp.Compare(x, y)
	}
}

// SortCustomers stably sorts rows in place by the display value of column.
// Rows with equal keys keep their relative order in both directions.
func SortCustomers(rows []core.Customer, column int, descending bool) {
	keys := make(map[int64]string, len(rows))
	values := make([]string, 0, len(rows))
	for _, c := range rows {
		v := c.Cells()[column]
		keys[c.ID] = v
		values = append(values, v)
	}

	compare := Comparator(values)
	slices.SortStableFunc(rows, func(a, b core.Customer) int {
		if descending {
			return compare(keys[b.ID], keys[a.ID])
		}
		return compare(keys[a.ID], keys[b.ID])
	})
}
