package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOK                Status = "ok"
	StatusNoData            Status = "no_data"            // filter matched nothing
	StatusSourceUnavailable Status = "source_unavailable" // fetch failed or source is empty
)

// Summary is the output of one aggregation view. NoData is set
// whenever Rows is empty.
type Summary[T any] struct {
	Rows   []T
	NoData bool
}

func NewSummary[T any](rows []T) Summary[T] {
	if rows == nil {
		rows = []T{}
	}
	return Summary[T]{Rows: rows, NoData: len(rows) == 0}
}

type KeyMetrics struct {
	TotalRevenue      decimal.Decimal
	TotalOrders       int64
	AverageOrderValue decimal.Decimal
	TotalUnits        decimal.Decimal
}

type MonthRevenue struct {
	Month   time.Month
	Revenue decimal.Decimal
}

type ProductRevenue struct {
	Product string
	Revenue decimal.Decimal
}

type CityRevenue struct {
	City    string
	Revenue decimal.Decimal
}

type HourOrders struct {
	Hour   int
	Orders int64
}

type DayRevenue struct {
	Weekday time.Weekday
	Revenue decimal.Decimal
}

type ProductAOV struct {
	Product string
	Orders  int64
	Revenue decimal.Decimal
	Average decimal.Decimal
}

// RecentOrder is a display row; money and time are already formatted.
type RecentOrder struct {
	OrderID   string
	Product   string
	Quantity  string
	PriceEach string
	Total     string
	OrderDate string
	City      string
}

type Dashboard struct {
	Status    Status
	Filter    FilterSpec
	FetchedAt time.Time
	RowCount  int

	Metrics        KeyMetrics
	MonthlyRevenue Summary[MonthRevenue]
	TopProducts    Summary[ProductRevenue]
	CityRevenue    Summary[CityRevenue]
	HourlyOrders   Summary[HourOrders]
	WeekdayRevenue Summary[DayRevenue]
	ProductAOV     Summary[ProductAOV]
	RecentOrders   Summary[RecentOrder]
}

// FilterOptions describes what a client may select.
type FilterOptions struct {
	Status          Status
	MinDate         time.Time
	MaxDate         time.Time
	Products        []string
	Cities          []string
	DefaultProducts []string
	DefaultCities   []string
	FetchedAt       time.Time
}
