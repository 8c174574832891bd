package analytics

import (
	"strings"
	"time"

	"github.com/grafana/regexp"
	"github.com/shopspring/decimal"

	"sales-dashboard-service/internal/sales/core/domain"
)

// "917 1st St, Dallas, TX 75001" -> "Dallas"
var cityPattern = regexp.MustCompile(`, ([^,]+),`)

// Layouts tried in order. Naive layouts are read as UTC; zoned ones are
// converted to UTC.
var orderDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05-07",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"01/02/06 15:04",
	"01/02/2006 15:04",
	"2006-01-02",
}

// Derive computes the derived columns for every record. A bad value
// only nulls the column that depends on it.
func Derive(records []domain.SalesRecord, fetchedAt time.Time) *domain.Table {
	orders := make([]domain.Order, len(records))
	for i, rec := range records {
		orders[i] = DeriveOrder(rec)
	}
	return &domain.Table{Orders: orders, FetchedAt: fetchedAt}
}

func DeriveOrder(rec domain.SalesRecord) domain.Order {
	o := domain.Order{
		SalesRecord: rec,
		Quantity:    nonNegative(ParseNumber(rec.QuantityOrdered)),
		UnitPrice:   nonNegative(ParseNumber(rec.PriceEach)),
	}

	if o.Quantity.Valid && o.UnitPrice.Valid {
		o.Total = decimal.NewNullDecimal(o.UnitPrice.Decimal.Mul(o.Quantity.Decimal))
	}

	if city, ok := ExtractCity(rec.PurchaseAddress); ok {
		o.City = city
	}

	if ts, ok := ParseOrderDate(rec.OrderDate); ok {
		o.Dated = true
		o.OrderedAt = ts
		o.Month = ts.Month()
		o.Hour = ts.Hour()
		o.Weekday = ts.Weekday()
	}

	return o
}

// ExtractCity returns the text between the first and second comma of
// an address.
func ExtractCity(address string) (string, bool) {
	m := cityPattern.FindStringSubmatch(address)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func ParseNumber(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// nonNegative nulls negative quantities and prices so totals are never
// below zero.
func nonNegative(d decimal.NullDecimal) decimal.NullDecimal {
	if d.Valid && d.Decimal.IsNegative() {
		return decimal.NullDecimal{}
	}
	return d
}

func ParseOrderDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range orderDateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}
