package ports

import (
	"context"

	"sales-dashboard-service/internal/sales/core/domain"
)

// SalesReaderPort runs the one fixed query against the data store.
// Failures are returned as *domain.FetchError.
type SalesReaderPort interface {
	FetchSales(ctx context.Context) ([]domain.SalesRecord, error)
}

// TableSourcePort hands out the current derived table.
type TableSourcePort interface {
	Table(ctx context.Context) (*domain.Table, error)
}
