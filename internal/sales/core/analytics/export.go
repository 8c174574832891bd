package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"sales-dashboard-service/internal/sales/core/domain"
)

var exportHeader = []string{
	"Order ID",
	"Product",
	"Quantity Ordered",
	"Price Each",
	"Order Date",
	"Purchase Address",
	"Total Sale",
	"City",
	"Month",
	"Month Name",
	"Hour",
	"Day",
}

// WriteCSV writes orders as UTF-8 CSV with a header row and no index
// column. Null cells are empty.
func WriteCSV(w io.Writer, orders []domain.Order) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, o := range orders {
		if err := cw.Write(exportRow(o)); err != nil {
			return fmt.Errorf("failed to write order %s: %w", o.OrderID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func exportRow(o domain.Order) []string {
	row := []string{
		o.OrderID,
		o.Product,
		formatNullNumber(o.Quantity),
		formatNullNumber(o.UnitPrice),
		"",
		o.PurchaseAddress,
		formatNullNumber(o.Total),
		o.City,
		"",
		"",
		"",
		"",
	}
	if o.Dated {
		row[4] = o.OrderedAt.Format(ExportTimeLayout)
		row[8] = strconv.Itoa(int(o.Month))
		row[9] = o.MonthName()
		row[10] = strconv.Itoa(o.Hour)
		row[11] = o.DayName()
	}
	return row
}
