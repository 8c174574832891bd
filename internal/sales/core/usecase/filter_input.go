package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"sales-dashboard-service/internal/sales/core/domain"
	"sales-dashboard-service/internal/sales/core/ports"
)

var (
	ErrInvalidDateRange = errors.New("start date is after end date")
)

// FilterInput is the user's selection. Zero dates default to the
// table's date bounds; a single date means a one-day range.
type FilterInput struct {
	Start    time.Time
	End      time.Time
	Products []string
	Cities   []string
}

func (in FilterInput) validate() error {
	if !in.Start.IsZero() && !in.End.IsZero() && domain.StartOfDay(in.Start).After(domain.StartOfDay(in.End)) {
		return ErrInvalidDateRange
	}
	return nil
}

func (in FilterInput) resolve(table *domain.Table) domain.FilterSpec {
	start, end := in.Start, in.End
	if start.IsZero() && end.IsZero() {
		start, end, _ = table.DateBounds()
	}
	return domain.NewFilterSpec(start, end, in.Products, in.Cities)
}

// loadTable returns (nil, nil) when the source could not be read; the
// failure is logged here and nowhere else.
func loadTable(ctx context.Context, source ports.TableSourcePort, logger log.Logger) (*domain.Table, error) {
	table, err := source.Table(ctx)
	if err != nil {
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			level.Error(logger).Log("msg", "sales table unavailable", "op", fetchErr.Op, "err", fetchErr.Err)
			return nil, nil
		}
		return nil, err
	}
	return table, nil
}
