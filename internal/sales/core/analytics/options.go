package analytics

import (
	"sort"

	"sales-dashboard-service/internal/sales/core/domain"
)

// Products returns the sorted distinct product names of the table.
func Products(table *domain.Table) []string {
	return distinctSorted(table, func(o domain.Order) string { return o.Product })
}

// Cities returns the sorted distinct cities, null cities excluded.
func Cities(table *domain.Table) []string {
	return distinctSorted(table, func(o domain.Order) string { return o.City })
}

func distinctSorted(table *domain.Table, key func(domain.Order) string) []string {
	out := []string{}
	if table.Len() == 0 {
		return out
	}
	seen := make(map[string]struct{})
	for _, o := range table.Orders {
		k := key(o)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Head returns at most n leading items of s.
func Head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
