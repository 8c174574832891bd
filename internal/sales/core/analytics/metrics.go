package analytics

import (
	"github.com/shopspring/decimal"

	"sales-dashboard-service/internal/sales/core/domain"
)

// Summarize computes the headline metrics. Total orders counts every
// distinct order id in the selection, including ids whose total is null.
func Summarize(orders []domain.Order) domain.KeyMetrics {
	var m domain.KeyMetrics
	ids := make(map[string]struct{}, len(orders))

	for _, o := range orders {
		if o.Total.Valid {
			m.TotalRevenue = m.TotalRevenue.Add(o.Total.Decimal)
		}
		if o.Quantity.Valid {
			m.TotalUnits = m.TotalUnits.Add(o.Quantity.Decimal)
		}
		if o.OrderID != "" {
			ids[o.OrderID] = struct{}{}
		}
	}

	m.TotalOrders = int64(len(ids))
	if m.TotalOrders > 0 {
		m.AverageOrderValue = m.TotalRevenue.Div(decimal.NewFromInt(m.TotalOrders))
	}
	return m
}
