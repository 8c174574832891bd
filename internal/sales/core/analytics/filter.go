package analytics

import (
	"sales-dashboard-service/internal/sales/core/domain"
)

// Apply returns the orders matching every predicate of spec, in table
// order. Undated orders never match. The table itself is not touched.
func Apply(table *domain.Table, spec domain.FilterSpec) []domain.Order {
	if table.Len() == 0 {
		return []domain.Order{}
	}

	products := toSet(spec.Products)
	cities := toSet(spec.Cities)

	out := make([]domain.Order, 0, len(table.Orders))
	for _, o := range table.Orders {
		if !o.Dated {
			continue
		}
		if o.OrderedAt.Before(spec.Start) || o.OrderedAt.After(spec.End) {
			continue
		}
		if products != nil && !products[o.Product] {
			continue
		}
		if cities != nil && (!o.HasCity() || !cities[o.City]) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// toSet returns nil for an empty selection so callers can skip the
// predicate.
func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
