package fiber

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"

	"sales-dashboard-service/internal/sales/core/domain"
	"sales-dashboard-service/internal/sales/core/usecase"
)

const (
	dateLayout     = "2006-01-02"
	exportFilename = "sales_data_export.csv"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.FilterInput) (*domain.Dashboard, error)
}

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.FilterOptions, error)
}

type ExportSalesUseCase interface {
	Execute(ctx context.Context, in usecase.FilterInput, w io.Writer) (int, error)
}

type SalesHandler struct {
	dashboardUC GetDashboardUseCase
	optionsUC   GetFilterOptionsUseCase
	exportUC    ExportSalesUseCase
	logger      log.Logger
}

func NewSalesHandler(dashboardUC GetDashboardUseCase, optionsUC GetFilterOptionsUseCase, exportUC ExportSalesUseCase, logger log.Logger) *SalesHandler {
	return &SalesHandler{
		dashboardUC: dashboardUC,
		optionsUC:   optionsUC,
		exportUC:    exportUC,
		logger:      logger,
	}
}

// Register mounts the sales routes on r.
func (h *SalesHandler) Register(r fiber.Router) {
	r.Get("/dashboard", h.GetDashboard)
	r.Get("/filters", h.GetFilterOptions)
	r.Get("/export.csv", h.ExportCSV)
}

// GetDashboard godoc
// @Summary Sales dashboard
// @Description Returns key metrics and every summary view for the selected filter
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD), defaults to first order date"
// @Param end query string false "End date (YYYY-MM-DD), inclusive; a single date selects one day"
// @Param product query []string false "Product names; repeat the parameter for several" collectionFormat(multi)
// @Param city query []string false "City names; repeat the parameter for several" collectionFormat(multi)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *SalesHandler) GetDashboard(c *fiber.Ctx) error {
	in, err := parseFilterInput(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_filter",
			Message: err.Error(),
		})
	}

	res, err := h.dashboardUC.Execute(c.UserContext(), in)
	if err != nil {
		return h.usecaseError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toDashboardResponse(res))
}

// GetFilterOptions godoc
// @Summary Filter options
// @Description Returns the selectable date bounds, products and cities
// @Tags Sales
// @Produce json
// @Success 200 {object} FilterOptionsResponse
// @Failure 500 {object} ErrorResponse
// @Router /filters [get]
func (h *SalesHandler) GetFilterOptions(c *fiber.Ctx) error {
	res, err := h.optionsUC.Execute(c.UserContext())
	if err != nil {
		return h.usecaseError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toFilterOptionsResponse(res))
}

// ExportCSV godoc
// @Summary Export filtered sales
// @Description Downloads the filtered table as CSV with a header row
// @Tags Sales
// @Produce text/csv
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param product query []string false "Product names" collectionFormat(multi)
// @Param city query []string false "City names" collectionFormat(multi)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /export.csv [get]
func (h *SalesHandler) ExportCSV(c *fiber.Ctx) error {
	in, err := parseFilterInput(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_filter",
			Message: err.Error(),
		})
	}

	var buf bytes.Buffer
	if _, err := h.exportUC.Execute(c.UserContext(), in, &buf); err != nil {
		return h.usecaseError(c, err)
	}

	c.Attachment(exportFilename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func (h *SalesHandler) usecaseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_filter",
			Message: err.Error(),
		})
	default:
		level.Error(h.logger).Log("msg", "request failed", "path", c.Path(), "err", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func parseFilterInput(c *fiber.Ctx) (usecase.FilterInput, error) {
	var in usecase.FilterInput
	var err error

	if in.Start, err = parseDate(c.Query("start", "")); err != nil {
		return in, errors.New("invalid 'start' parameter")
	}
	if in.End, err = parseDate(c.Query("end", "")); err != nil {
		return in, errors.New("invalid 'end' parameter")
	}

	in.Products = queryValues(c, "product")
	in.Cities = queryValues(c, "city")
	return in, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

// queryValues returns every non-empty value of a repeated parameter.
func queryValues(c *fiber.Ctx, key string) []string {
	var out []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		if s := strings.TrimSpace(string(v)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
