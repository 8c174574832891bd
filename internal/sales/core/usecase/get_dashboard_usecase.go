package usecase

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"sales-dashboard-service/internal/sales/core/analytics"
	"sales-dashboard-service/internal/sales/core/domain"
	"sales-dashboard-service/internal/sales/core/ports"
)

type GetDashboardUseCase struct {
	source ports.TableSourcePort
	logger log.Logger
}

func NewGetDashboardUseCase(source ports.TableSourcePort, logger log.Logger) *GetDashboardUseCase {
	return &GetDashboardUseCase{source: source, logger: logger}
}

// Execute validates the filter, applies it to the cached table and
// computes every view. An unreadable source is not an error: the
// dashboard comes back with StatusSourceUnavailable.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in FilterInput) (*domain.Dashboard, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	table, err := loadTable(ctx, uc.source, uc.logger)
	if err != nil {
		return nil, err
	}
	if table.Len() == 0 {
		return emptyDashboard(domain.StatusSourceUnavailable, domain.FilterSpec{}, table), nil
	}

	spec := in.resolve(table)
	filtered := analytics.Apply(table, spec)

	level.Debug(uc.logger).Log("msg", "dashboard filter applied", "rows", len(filtered), "of", table.Len())

	if len(filtered) == 0 {
		return emptyDashboard(domain.StatusNoData, spec, table), nil
	}

	return &domain.Dashboard{
		Status:         domain.StatusOK,
		Filter:         spec,
		FetchedAt:      table.FetchedAt,
		RowCount:       len(filtered),
		Metrics:        analytics.Summarize(filtered),
		MonthlyRevenue: analytics.MonthlyRevenue(filtered),
		TopProducts:    analytics.TopProducts(filtered),
		CityRevenue:    analytics.CityRevenue(filtered),
		HourlyOrders:   analytics.HourlyOrders(filtered),
		WeekdayRevenue: analytics.WeekdayRevenue(filtered),
		ProductAOV:     analytics.ProductAOV(filtered),
		RecentOrders:   analytics.RecentOrders(filtered),
	}, nil
}

func emptyDashboard(status domain.Status, spec domain.FilterSpec, table *domain.Table) *domain.Dashboard {
	d := &domain.Dashboard{
		Status:         status,
		Filter:         spec,
		MonthlyRevenue: domain.NewSummary[domain.MonthRevenue](nil),
		TopProducts:    domain.NewSummary[domain.ProductRevenue](nil),
		CityRevenue:    domain.NewSummary[domain.CityRevenue](nil),
		HourlyOrders:   domain.NewSummary[domain.HourOrders](nil),
		WeekdayRevenue: domain.NewSummary[domain.DayRevenue](nil),
		ProductAOV:     domain.NewSummary[domain.ProductAOV](nil),
		RecentOrders:   domain.NewSummary[domain.RecentOrder](nil),
	}
	if table != nil {
		d.FetchedAt = table.FetchedAt
	}
	return d
}
