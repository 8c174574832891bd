package fiber

type FilterResponse struct {
	Start    string   `json:"start" example:"2019-01-01T00:00:00Z"`
	End      string   `json:"end" example:"2019-12-31T23:59:59.999999999Z"`
	Products []string `json:"products"`
	Cities   []string `json:"cities"`
}

type KeyMetricsResponse struct {
	TotalRevenue             float64 `json:"total_revenue"`
	TotalRevenueDisplay      string  `json:"total_revenue_display" example:"$34,492,035.97"`
	TotalOrders              int64   `json:"total_orders"`
	TotalOrdersDisplay       string  `json:"total_orders_display" example:"178,437"`
	AverageOrderValue        float64 `json:"average_order_value"`
	AverageOrderValueDisplay string  `json:"average_order_value_display" example:"$193.30"`
	TotalUnits               float64 `json:"total_units"`
	TotalUnitsDisplay        string  `json:"total_units_display" example:"209,079"`
}

type MonthRevenueResponse struct {
	Month   string  `json:"month" example:"January"`
	Revenue float64 `json:"revenue"`
}

type ProductRevenueResponse struct {
	Product string  `json:"product"`
	Revenue float64 `json:"revenue"`
}

type CityRevenueResponse struct {
	City    string  `json:"city"`
	Revenue float64 `json:"revenue"`
}

type HourOrdersResponse struct {
	Hour   int   `json:"hour"`
	Orders int64 `json:"orders"`
}

type DayRevenueResponse struct {
	Day     string  `json:"day" example:"Monday"`
	Revenue float64 `json:"revenue"`
}

type ProductAOVResponse struct {
	Product           string  `json:"product"`
	Orders            int64   `json:"orders"`
	Revenue           float64 `json:"revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}

type RecentOrderResponse struct {
	OrderID   string `json:"order_id"`
	Product   string `json:"product"`
	Quantity  string `json:"quantity_ordered"`
	PriceEach string `json:"price_each" example:"$11.95"`
	Total     string `json:"total_sale" example:"$23.90"`
	OrderDate string `json:"order_date" example:"2019-04-19 08:46"`
	City      string `json:"city"`
}

// SummaryResponse wraps one view; no_data is true when rows is empty.
type SummaryResponse[T any] struct {
	NoData bool `json:"no_data"`
	Rows   []T  `json:"rows"`
}

type DashboardResponse struct {
	Status         string                                  `json:"status" example:"ok"`
	Message        string                                  `json:"message,omitempty"`
	Filter         FilterResponse                          `json:"filter"`
	FetchedAt      string                                  `json:"fetched_at,omitempty"`
	RowCount       int                                     `json:"row_count"`
	Metrics        KeyMetricsResponse                      `json:"metrics"`
	MonthlyRevenue SummaryResponse[MonthRevenueResponse]   `json:"monthly_revenue"`
	TopProducts    SummaryResponse[ProductRevenueResponse] `json:"top_products"`
	CityRevenue    SummaryResponse[CityRevenueResponse]    `json:"city_revenue"`
	HourlyOrders   SummaryResponse[HourOrdersResponse]     `json:"hourly_orders"`
	WeekdayRevenue SummaryResponse[DayRevenueResponse]     `json:"weekday_revenue"`
	ProductAOV     SummaryResponse[ProductAOVResponse]     `json:"product_aov"`
	RecentOrders   SummaryResponse[RecentOrderResponse]    `json:"recent_orders"`
}

type FilterOptionsResponse struct {
	Status          string   `json:"status" example:"ok"`
	MinDate         string   `json:"min_date,omitempty" example:"2019-01-01"`
	MaxDate         string   `json:"max_date,omitempty" example:"2020-01-01"`
	Products        []string `json:"products"`
	Cities          []string `json:"cities"`
	DefaultProducts []string `json:"default_products"`
	DefaultCities   []string `json:"default_cities"`
	FetchedAt       string   `json:"fetched_at,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_filter"`
	Message string `json:"message" example:"invalid 'start' parameter"`
}
