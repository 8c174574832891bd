package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"sales-dashboard-service/internal/sales/core/domain"
)

const (
	topProductsLimit  = 10
	productAOVLimit   = 10
	recentOrdersLimit = 10
)

// revenueGroups sums non-null totals per key, remembering first-seen key
// order so equal sums keep their appearance order after a stable sort.
type revenueGroups[K comparable] struct {
	order []K
	sums  map[K]decimal.Decimal
}

func newRevenueGroups[K comparable]() *revenueGroups[K] {
	return &revenueGroups[K]{sums: make(map[K]decimal.Decimal)}
}

func (g *revenueGroups[K]) add(key K, total decimal.NullDecimal) {
	sum, seen := g.sums[key]
	if !seen {
		g.order = append(g.order, key)
	}
	if total.Valid {
		sum = sum.Add(total.Decimal)
	}
	g.sums[key] = sum
}

// MonthlyRevenue sums revenue per calendar month, January first.
func MonthlyRevenue(orders []domain.Order) domain.Summary[domain.MonthRevenue] {
	g := newRevenueGroups[time.Month]()
	for _, o := range orders {
		if !o.Dated {
			continue
		}
		g.add(o.Month, o.Total)
	}

	rows := make([]domain.MonthRevenue, 0, len(g.order))
	for m := time.January; m <= time.December; m++ {
		if sum, ok := g.sums[m]; ok {
			rows = append(rows, domain.MonthRevenue{Month: m, Revenue: sum})
		}
	}
	return domain.NewSummary(rows)
}

func TopProducts(orders []domain.Order) domain.Summary[domain.ProductRevenue] {
	g := newRevenueGroups[string]()
	for _, o := range orders {
		if o.Product == "" {
			continue
		}
		g.add(o.Product, o.Total)
	}

	rows := make([]domain.ProductRevenue, 0, len(g.order))
	for _, p := range g.order {
		rows = append(rows, domain.ProductRevenue{Product: p, Revenue: g.sums[p]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	if len(rows) > topProductsLimit {
		rows = rows[:topProductsLimit]
	}
	return domain.NewSummary(rows)
}

// CityRevenue emits absolute revenue per city, largest first. Orders
// without a city are left out of this view only.
func CityRevenue(orders []domain.Order) domain.Summary[domain.CityRevenue] {
	g := newRevenueGroups[string]()
	for _, o := range orders {
		if !o.HasCity() {
			continue
		}
		g.add(o.City, o.Total)
	}

	rows := make([]domain.CityRevenue, 0, len(g.order))
	for _, c := range g.order {
		rows = append(rows, domain.CityRevenue{City: c, Revenue: g.sums[c]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	return domain.NewSummary(rows)
}

// HourlyOrders counts order lines per hour of day. Hours without
// orders are absent.
func HourlyOrders(orders []domain.Order) domain.Summary[domain.HourOrders] {
	var counts [24]int64
	var seen [24]bool
	for _, o := range orders {
		if !o.Dated || o.OrderID == "" {
			continue
		}
		counts[o.Hour]++
		seen[o.Hour] = true
	}

	rows := make([]domain.HourOrders, 0, 24)
	for h := 0; h < 24; h++ {
		if seen[h] {
			rows = append(rows, domain.HourOrders{Hour: h, Orders: counts[h]})
		}
	}
	return domain.NewSummary(rows)
}

var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeekdayRevenue sums revenue per day of week, Monday first.
func WeekdayRevenue(orders []domain.Order) domain.Summary[domain.DayRevenue] {
	g := newRevenueGroups[time.Weekday]()
	for _, o := range orders {
		if !o.Dated {
			continue
		}
		g.add(o.Weekday, o.Total)
	}

	rows := make([]domain.DayRevenue, 0, len(g.order))
	for _, d := range weekOrder {
		if sum, ok := g.sums[d]; ok {
			rows = append(rows, domain.DayRevenue{Weekday: d, Revenue: sum})
		}
	}
	return domain.NewSummary(rows)
}

// ProductAOV ranks products by revenue per distinct order. Products
// with no identifiable order are dropped instead of dividing by zero.
func ProductAOV(orders []domain.Order) domain.Summary[domain.ProductAOV] {
	g := newRevenueGroups[string]()
	distinct := make(map[string]map[string]struct{})
	for _, o := range orders {
		if o.Product == "" {
			continue
		}
		g.add(o.Product, o.Total)
		if o.OrderID == "" {
			continue
		}
		ids, ok := distinct[o.Product]
		if !ok {
			ids = make(map[string]struct{})
			distinct[o.Product] = ids
		}
		ids[o.OrderID] = struct{}{}
	}

	rows := make([]domain.ProductAOV, 0, len(g.order))
	for _, p := range g.order {
		n := int64(len(distinct[p]))
		if n == 0 {
			continue
		}
		revenue := g.sums[p]
		rows = append(rows, domain.ProductAOV{
			Product: p,
			Orders:  n,
			Revenue: revenue,
			Average: revenue.Div(decimal.NewFromInt(n)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Average.GreaterThan(rows[j].Average)
	})
	if len(rows) > productAOVLimit {
		rows = rows[:productAOVLimit]
	}
	return domain.NewSummary(rows)
}

// RecentOrders returns the newest order lines formatted for display.
func RecentOrders(orders []domain.Order) domain.Summary[domain.RecentOrder] {
	dated := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Dated {
			dated = append(dated, o)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].OrderedAt.After(dated[j].OrderedAt)
	})
	if len(dated) > recentOrdersLimit {
		dated = dated[:recentOrdersLimit]
	}

	rows := make([]domain.RecentOrder, 0, len(dated))
	for _, o := range dated {
		rows = append(rows, domain.RecentOrder{
			OrderID:   o.OrderID,
			Product:   o.Product,
			Quantity:  formatNullNumber(o.Quantity),
			PriceEach: formatNullCurrency(o.UnitPrice),
			Total:     formatNullCurrency(o.Total),
			OrderDate: o.OrderedAt.Format(DisplayTimeLayout),
			City:      o.City,
		})
	}
	return domain.NewSummary(rows)
}
