package usecase

import (
	"context"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"sales-dashboard-service/internal/sales/core/analytics"
	"sales-dashboard-service/internal/sales/core/domain"
	"sales-dashboard-service/internal/sales/core/ports"
)

type ExportSalesUseCase struct {
	source ports.TableSourcePort
	logger log.Logger
}

func NewExportSalesUseCase(source ports.TableSourcePort, logger log.Logger) *ExportSalesUseCase {
	return &ExportSalesUseCase{source: source, logger: logger}
}

// Execute writes the filtered table to w as CSV and reports how many
// rows were written. When the source is unavailable only the header is
// written.
func (uc *ExportSalesUseCase) Execute(ctx context.Context, in FilterInput, w io.Writer) (int, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	table, err := loadTable(ctx, uc.source, uc.logger)
	if err != nil {
		return 0, err
	}

	var filtered []domain.Order
	if table.Len() > 0 {
		filtered = analytics.Apply(table, in.resolve(table))
	}

	if err := analytics.WriteCSV(w, filtered); err != nil {
		return 0, err
	}

	level.Info(uc.logger).Log("msg", "exported filtered sales", "rows", len(filtered))
	return len(filtered), nil
}
