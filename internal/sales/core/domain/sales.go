package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one row of the source table, exactly as text.
// SQL NULL arrives as "".
type SalesRecord struct {
	OrderID         string
	Product         string
	QuantityOrdered string
	PriceEach       string
	OrderDate       string
	PurchaseAddress string
}

// Order is a SalesRecord plus the derived columns.
type Order struct {
	SalesRecord

	Quantity  decimal.NullDecimal
	UnitPrice decimal.NullDecimal
	Total     decimal.NullDecimal // UnitPrice * Quantity, null if either is null

	City string // "" when the address has no city segment

	Dated     bool // false when OrderDate could not be parsed
	OrderedAt time.Time
	Month     time.Month
	Hour      int
	Weekday   time.Weekday
}

func (o Order) HasCity() bool {
	return o.City != ""
}

func (o Order) MonthName() string {
	if !o.Dated {
		return ""
	}
	return o.Month.String()
}

func (o Order) DayName() string {
	if !o.Dated {
		return ""
	}
	return o.Weekday.String()
}

// Table is the derived table of one fetch. Never mutated after publish.
type Table struct {
	Orders    []Order
	FetchedAt time.Time
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Orders)
}

// DateBounds returns the earliest and latest order timestamps.
// ok is false when no row carries a parseable timestamp.
func (t *Table) DateBounds() (minTime, maxTime time.Time, ok bool) {
	if t == nil {
		return
	}
	for _, o := range t.Orders {
		if !o.Dated {
			continue
		}
		if !ok || o.OrderedAt.Before(minTime) {
			minTime = o.OrderedAt
		}
		if !ok || o.OrderedAt.After(maxTime) {
			maxTime = o.OrderedAt
		}
		ok = true
	}
	return
}
