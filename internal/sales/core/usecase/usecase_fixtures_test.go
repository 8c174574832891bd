package usecase_test

import (
	"context"
	"time"

	"sales-dashboard-service/internal/sales/core/analytics"
	"sales-dashboard-service/internal/sales/core/domain"
)

// fakeTableSource stands in for the table cache.
type fakeTableSource struct {
	TableFn func(ctx context.Context) (*domain.Table, error)
	calls   int
}

func (f *fakeTableSource) Table(ctx context.Context) (*domain.Table, error) {
	f.calls++
	if f.TableFn != nil {
		return f.TableFn(ctx)
	}
	return &domain.Table{}, nil
}

var fetchedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func salesTable() *domain.Table {
	return analytics.Derive([]domain.SalesRecord{
		{OrderID: "1", Product: "Wired Headphones", QuantityOrdered: "2", PriceEach: "11.99", OrderDate: "2019-01-05 10:00:00", PurchaseAddress: "1 St, Boston, MA 02215"},
		{OrderID: "2", Product: "AA Batteries", QuantityOrdered: "4", PriceEach: "3.84", OrderDate: "2019-02-10 14:30:00", PurchaseAddress: "2 St, Austin, TX 73301"},
		{OrderID: "3", Product: "Wired Headphones", QuantityOrdered: "1", PriceEach: "11.99", OrderDate: "2019-03-15 20:15:00", PurchaseAddress: "3 St, Seattle, WA 98101"},
		{OrderID: "4", Product: "iPhone", QuantityOrdered: "1", PriceEach: "700", OrderDate: "Order Date", PurchaseAddress: "Purchase Address"},
	}, fetchedAt)
}

func staticSource(t *domain.Table) *fakeTableSource {
	return &fakeTableSource{TableFn: func(ctx context.Context) (*domain.Table, error) { return t, nil }}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
