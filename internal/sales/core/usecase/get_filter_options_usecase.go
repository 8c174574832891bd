package usecase

import (
	"context"

	"github.com/go-kit/log"

	"sales-dashboard-service/internal/sales/core/analytics"
	"sales-dashboard-service/internal/sales/core/domain"
	"sales-dashboard-service/internal/sales/core/ports"
)

// Preselected entries a client shows before the user picks anything.
const (
	defaultProductSelection = 5
	defaultCitySelection    = 3
)

type GetFilterOptionsUseCase struct {
	source ports.TableSourcePort
	logger log.Logger
}

func NewGetFilterOptionsUseCase(source ports.TableSourcePort, logger log.Logger) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{source: source, logger: logger}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	table, err := loadTable(ctx, uc.source, uc.logger)
	if err != nil {
		return nil, err
	}
	if table.Len() == 0 {
		return &domain.FilterOptions{
			Status:          domain.StatusSourceUnavailable,
			Products:        []string{},
			Cities:          []string{},
			DefaultProducts: []string{},
			DefaultCities:   []string{},
		}, nil
	}

	products := analytics.Products(table)
	cities := analytics.Cities(table)

	opts := &domain.FilterOptions{
		Status:          domain.StatusOK,
		Products:        products,
		Cities:          cities,
		DefaultProducts: analytics.Head(products, defaultProductSelection),
		DefaultCities:   analytics.Head(cities, defaultCitySelection),
		FetchedAt:       table.FetchedAt,
	}
	if minDate, maxDate, ok := table.DateBounds(); ok {
		opts.MinDate = domain.StartOfDay(minDate)
		opts.MaxDate = domain.StartOfDay(maxDate)
	} else {
		opts.Status = domain.StatusNoData
	}
	return opts, nil
}
