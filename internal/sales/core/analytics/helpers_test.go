package analytics

import (
	"time"

	"sales-dashboard-service/internal/sales/core/domain"
)

func rec(id, product, qty, price, date, addr string) domain.SalesRecord {
	return domain.SalesRecord{
		OrderID:         id,
		Product:         product,
		QuantityOrdered: qty,
		PriceEach:       price,
		OrderDate:       date,
		PurchaseAddress: addr,
	}
}

func table(records ...domain.SalesRecord) *domain.Table {
	return Derive(records, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func orderIDs(orders []domain.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}
	return ids
}
