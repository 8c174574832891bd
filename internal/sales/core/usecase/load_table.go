package usecase

import (
	"context"
	"time"

	"sales-dashboard-service/internal/sales/core/analytics"
	"sales-dashboard-service/internal/sales/core/domain"
	"sales-dashboard-service/internal/sales/core/ports"
)

// NewTableLoader returns a loader that fetches the raw table and derives
// it in one go. It is what the table cache calls on a miss.
func NewTableLoader(reader ports.SalesReaderPort) func(ctx context.Context) (*domain.Table, error) {
	return func(ctx context.Context) (*domain.Table, error) {
		records, err := reader.FetchSales(ctx)
		if err != nil {
			return nil, err
		}
		return analytics.Derive(records, time.Now().UTC()), nil
	}
}
