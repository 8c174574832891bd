package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	httpadapter "sales-dashboard-service/internal/sales/adapters/http/fiber"
	"sales-dashboard-service/internal/sales/core/domain"
	"sales-dashboard-service/internal/sales/core/usecase"
)

type fakeDashboardUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.FilterInput) (*domain.Dashboard, error)
	lastInput usecase.FilterInput
	called    bool
}

func (f *fakeDashboardUseCase) Execute(ctx context.Context, in usecase.FilterInput) (*domain.Dashboard, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.Dashboard{Status: domain.StatusOK}, nil
}

type fakeOptionsUseCase struct {
	ExecuteFn func(ctx context.Context) (*domain.FilterOptions, error)
}

func (f *fakeOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx)
	}
	return &domain.FilterOptions{Status: domain.StatusOK}, nil
}

type fakeExportUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.FilterInput, w io.Writer) (int, error)
	lastInput usecase.FilterInput
}

func (f *fakeExportUseCase) Execute(ctx context.Context, in usecase.FilterInput, w io.Writer) (int, error) {
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in, w)
	}
	return 0, nil
}

func setupApp(t *testing.T, d httpadapter.GetDashboardUseCase, o httpadapter.GetFilterOptionsUseCase, e httpadapter.ExportSalesUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewSalesHandler(d, o, e, log.NewNopLogger())
	h.Register(app)
	return app
}

func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// ------------------------------------------------------------
// DASHBOARD: success
// ------------------------------------------------------------

func TestGetDashboard_Success(t *testing.T) {
	start := time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2019, 4, 30, 0, 0, 0, 0, time.UTC)

	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.FilterInput) (*domain.Dashboard, error) {
			return &domain.Dashboard{
				Status:    domain.StatusOK,
				Filter:    domain.NewFilterSpec(in.Start, in.End, in.Products, in.Cities),
				FetchedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
				RowCount:  1,
				Metrics: domain.KeyMetrics{
					TotalRevenue:      decimal.RequireFromString("1234.5"),
					TotalOrders:       1,
					AverageOrderValue: decimal.RequireFromString("1234.5"),
					TotalUnits:        decimal.NewFromInt(3),
				},
				MonthlyRevenue: domain.NewSummary([]domain.MonthRevenue{
					{Month: time.April, Revenue: decimal.RequireFromString("1234.5")},
				}),
				WeekdayRevenue: domain.NewSummary([]domain.DayRevenue{
					{Weekday: time.Friday, Revenue: decimal.RequireFromString("1234.5")},
				}),
			}, nil
		},
	}

	app := setupApp(t, uc, &fakeOptionsUseCase{}, &fakeExportUseCase{})

	params := url.Values{}
	params.Set("start", "2019-04-01")
	params.Set("end", "2019-04-30")
	params.Add("product", "USB-C Charging Cable")
	params.Add("product", "Wired Headphones")
	params.Add("city", "Boston")

	req := httptest.NewRequest(http.MethodGet, "/dashboard?"+params.Encode(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	if !uc.lastInput.Start.Equal(start) || !uc.lastInput.End.Equal(end) {
		t.Fatalf("unexpected range passed to usecase: %v..%v", uc.lastInput.Start, uc.lastInput.End)
	}
	if len(uc.lastInput.Products) != 2 || uc.lastInput.Products[1] != "Wired Headphones" {
		t.Fatalf("expected both products in order, got %v", uc.lastInput.Products)
	}
	if len(uc.lastInput.Cities) != 1 || uc.lastInput.Cities[0] != "Boston" {
		t.Fatalf("expected city Boston, got %v", uc.lastInput.Cities)
	}

	var body httpadapter.DashboardResponse
	decodeJSON(t, resp, &body)

	if body.Status != "ok" || body.Message != "" {
		t.Fatalf("unexpected status/message: %q %q", body.Status, body.Message)
	}
	if body.Metrics.TotalRevenueDisplay != "$1,234.50" {
		t.Fatalf("expected $1,234.50, got %q", body.Metrics.TotalRevenueDisplay)
	}
	if body.Metrics.TotalRevenue != 1234.5 {
		t.Fatalf("expected 1234.5, got %v", body.Metrics.TotalRevenue)
	}
	if body.MonthlyRevenue.NoData || len(body.MonthlyRevenue.Rows) != 1 || body.MonthlyRevenue.Rows[0].Month != "April" {
		t.Fatalf("unexpected monthly revenue: %+v", body.MonthlyRevenue)
	}
	if body.WeekdayRevenue.Rows[0].Day != "Friday" {
		t.Fatalf("expected Friday, got %q", body.WeekdayRevenue.Rows[0].Day)
	}
	if !body.TopProducts.NoData || body.TopProducts.Rows == nil {
		t.Fatalf("empty view must be flagged no_data with an empty row list: %+v", body.TopProducts)
	}
	if body.FetchedAt != "2024-01-01T12:00:00Z" {
		t.Fatalf("unexpected fetched_at %q", body.FetchedAt)
	}
}

// ------------------------------------------------------------
// DASHBOARD: degraded statuses are still 200
// ------------------------------------------------------------

func TestGetDashboard_SourceUnavailable(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.FilterInput) (*domain.Dashboard, error) {
			return &domain.Dashboard{Status: domain.StatusSourceUnavailable}, nil
		},
	}
	app := setupApp(t, uc, &fakeOptionsUseCase{}, &fakeExportUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body httpadapter.DashboardResponse
	decodeJSON(t, resp, &body)
	if body.Status != "source_unavailable" || body.Message == "" {
		t.Fatalf("expected source_unavailable with message, got %q %q", body.Status, body.Message)
	}
	if body.Filter.Products == nil || body.Filter.Cities == nil {
		t.Fatalf("filter lists must serialize as empty arrays")
	}
}

// ------------------------------------------------------------
// DASHBOARD: validation errors
// ------------------------------------------------------------

func TestGetDashboard_InvalidDates(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		message string
	}{
		{"bad start", "start=2019-13-01", "invalid 'start' parameter"},
		{"bad end", "end=yesterday", "invalid 'end' parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeDashboardUseCase{}
			app := setupApp(t, uc, &fakeOptionsUseCase{}, &fakeExportUseCase{})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard?"+tt.query, nil))
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.StatusCode)
			}
			if uc.called {
				t.Fatalf("usecase should not be called on invalid input")
			}

			var body httpadapter.ErrorResponse
			decodeJSON(t, resp, &body)
			if body.Error != "invalid_filter" || body.Message != tt.message {
				t.Fatalf("unexpected error body: %+v", body)
			}
		})
	}
}

func TestGetDashboard_InvertedRange(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.FilterInput) (*domain.Dashboard, error) {
			return nil, usecase.ErrInvalidDateRange
		},
	}
	app := setupApp(t, uc, &fakeOptionsUseCase{}, &fakeExportUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard?start=2019-05-01&end=2019-04-01", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestGetDashboard_InternalError(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.FilterInput) (*domain.Dashboard, error) {
			return nil, errors.New("boom")
		},
	}
	app := setupApp(t, uc, &fakeOptionsUseCase{}, &fakeExportUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}

	var body httpadapter.ErrorResponse
	decodeJSON(t, resp, &body)
	if body.Error != "internal_server_error" {
		t.Fatalf("unexpected error code %q", body.Error)
	}
}

// ------------------------------------------------------------
// FILTER OPTIONS
// ------------------------------------------------------------

func TestGetFilterOptions_Success(t *testing.T) {
	uc := &fakeOptionsUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.FilterOptions, error) {
			return &domain.FilterOptions{
				Status:          domain.StatusOK,
				MinDate:         time.Date(2019, 1, 1, 9, 0, 0, 0, time.UTC),
				MaxDate:         time.Date(2019, 12, 31, 22, 0, 0, 0, time.UTC),
				Products:        []string{"A", "B"},
				Cities:          []string{"Boston"},
				DefaultProducts: []string{"A", "B"},
				DefaultCities:   []string{"Boston"},
			}, nil
		},
	}
	app := setupApp(t, &fakeDashboardUseCase{}, uc, &fakeExportUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/filters", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body httpadapter.FilterOptionsResponse
	decodeJSON(t, resp, &body)
	if body.MinDate != "2019-01-01" || body.MaxDate != "2019-12-31" {
		t.Fatalf("unexpected bounds %q..%q", body.MinDate, body.MaxDate)
	}
	if len(body.Products) != 2 || len(body.DefaultCities) != 1 {
		t.Fatalf("unexpected options body: %+v", body)
	}
}

func TestGetFilterOptions_InternalError(t *testing.T) {
	uc := &fakeOptionsUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.FilterOptions, error) {
			return nil, errors.New("boom")
		},
	}
	app := setupApp(t, &fakeDashboardUseCase{}, uc, &fakeExportUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/filters", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// EXPORT
// ------------------------------------------------------------

func TestExportCSV_Success(t *testing.T) {
	uc := &fakeExportUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.FilterInput, w io.Writer) (int, error) {
			_, err := io.WriteString(w, "Order ID,Product\n1,A\n")
			return 1, err
		},
	}
	app := setupApp(t, &fakeDashboardUseCase{}, &fakeOptionsUseCase{}, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/export.csv?city=Austin&city=Dallas", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "sales_data_export.csv") {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if len(uc.lastInput.Cities) != 2 {
		t.Fatalf("expected two cities, got %v", uc.lastInput.Cities)
	}

	data, _ := io.ReadAll(resp.Body)
	if string(data) != "Order ID,Product\n1,A\n" {
		t.Fatalf("unexpected body %q", data)
	}
}

func TestExportCSV_InvalidStart(t *testing.T) {
	app := setupApp(t, &fakeDashboardUseCase{}, &fakeOptionsUseCase{}, &fakeExportUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/export.csv?start=nope", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}
