package postgres

import (
	"context"
	"database/sql"

	"sales-dashboard-service/internal/sales/core/domain"
	"sales-dashboard-service/internal/sales/core/ports"
)

type SalesRepository struct {
	db DB
}

func NewSalesRepository(db DB) *SalesRepository {
	return &SalesRepository{db: db}
}

var _ ports.SalesReaderPort = (*SalesRepository)(nil)

// Every column comes back as text; parsing belongs to the deriver.
const selectSalesSQL = `
SELECT
    CAST("Order ID" AS TEXT),
    CAST("Product" AS TEXT),
    CAST("Quantity Ordered" AS TEXT),
    CAST("Price Each" AS TEXT),
    CAST("Order Date" AS TEXT),
    CAST("Purchase Address" AS TEXT)
FROM "data_ETL"`

func (r *SalesRepository) FetchSales(ctx context.Context) ([]domain.SalesRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectSalesSQL)
	if err != nil {
		return nil, &domain.FetchError{Op: "query", Err: err}
	}
	defer rows.Close()

	records := []domain.SalesRecord{}
	for rows.Next() {
		var orderID, product, qty, price, orderDate, address sql.NullString

		if err := rows.Scan(&orderID, &product, &qty, &price, &orderDate, &address); err != nil {
			return nil, &domain.FetchError{Op: "scan", Err: err}
		}

		records = append(records, domain.SalesRecord{
			OrderID:         orderID.String,
			Product:         product.String,
			QuantityOrdered: qty.String,
			PriceEach:       price.String,
			OrderDate:       orderDate.String,
			PurchaseAddress: address.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.FetchError{Op: "rows", Err: err}
	}

	return records, nil
}
