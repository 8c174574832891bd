package fiber

import (
	"time"

	"github.com/shopspring/decimal"

	"sales-dashboard-service/internal/sales/core/analytics"
	"sales-dashboard-service/internal/sales/core/domain"
)

var statusMessages = map[domain.Status]string{
	domain.StatusNoData:            "No data available for the selected filters.",
	domain.StatusSourceUnavailable: "Sales data could not be loaded from the database.",
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	m := d.Metrics
	return DashboardResponse{
		Status:    string(d.Status),
		Message:   statusMessages[d.Status],
		Filter:    toFilterResponse(d.Filter),
		FetchedAt: formatInstant(d.FetchedAt),
		RowCount:  d.RowCount,
		Metrics: KeyMetricsResponse{
			TotalRevenue:             money(m.TotalRevenue),
			TotalRevenueDisplay:      analytics.FormatCurrency(m.TotalRevenue),
			TotalOrders:              m.TotalOrders,
			TotalOrdersDisplay:       analytics.FormatCount(decimal.NewFromInt(m.TotalOrders)),
			AverageOrderValue:        money(m.AverageOrderValue),
			AverageOrderValueDisplay: analytics.FormatCurrency(m.AverageOrderValue),
			TotalUnits:               m.TotalUnits.InexactFloat64(),
			TotalUnitsDisplay:        analytics.FormatCount(m.TotalUnits),
		},
		MonthlyRevenue: mapSummary(d.MonthlyRevenue, func(r domain.MonthRevenue) MonthRevenueResponse {
			return MonthRevenueResponse{Month: r.Month.String(), Revenue: money(r.Revenue)}
		}),
		TopProducts: mapSummary(d.TopProducts, func(r domain.ProductRevenue) ProductRevenueResponse {
			return ProductRevenueResponse{Product: r.Product, Revenue: money(r.Revenue)}
		}),
		CityRevenue: mapSummary(d.CityRevenue, func(r domain.CityRevenue) CityRevenueResponse {
			return CityRevenueResponse{City: r.City, Revenue: money(r.Revenue)}
		}),
		HourlyOrders: mapSummary(d.HourlyOrders, func(r domain.HourOrders) HourOrdersResponse {
			return HourOrdersResponse{Hour: r.Hour, Orders: r.Orders}
		}),
		WeekdayRevenue: mapSummary(d.WeekdayRevenue, func(r domain.DayRevenue) DayRevenueResponse {
			return DayRevenueResponse{Day: r.Weekday.String(), Revenue: money(r.Revenue)}
		}),
		ProductAOV: mapSummary(d.ProductAOV, func(r domain.ProductAOV) ProductAOVResponse {
			return ProductAOVResponse{
				Product:           r.Product,
				Orders:            r.Orders,
				Revenue:           money(r.Revenue),
				AverageOrderValue: money(r.Average),
			}
		}),
		RecentOrders: mapSummary(d.RecentOrders, func(r domain.RecentOrder) RecentOrderResponse {
			return RecentOrderResponse(r)
		}),
	}
}

func toFilterOptionsResponse(o *domain.FilterOptions) FilterOptionsResponse {
	resp := FilterOptionsResponse{
		Status:          string(o.Status),
		Products:        o.Products,
		Cities:          o.Cities,
		DefaultProducts: o.DefaultProducts,
		DefaultCities:   o.DefaultCities,
		FetchedAt:       formatInstant(o.FetchedAt),
	}
	if !o.MinDate.IsZero() {
		resp.MinDate = o.MinDate.Format(dateLayout)
		resp.MaxDate = o.MaxDate.Format(dateLayout)
	}
	return resp
}

func toFilterResponse(f domain.FilterSpec) FilterResponse {
	resp := FilterResponse{
		Start:    formatInstant(f.Start),
		End:      formatInstant(f.End),
		Products: f.Products,
		Cities:   f.Cities,
	}
	if resp.Products == nil {
		resp.Products = []string{}
	}
	if resp.Cities == nil {
		resp.Cities = []string{}
	}
	return resp
}

func mapSummary[T, R any](s domain.Summary[T], fn func(T) R) SummaryResponse[R] {
	rows := make([]R, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, fn(r))
	}
	return SummaryResponse[R]{NoData: s.NoData || len(rows) == 0, Rows: rows}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
