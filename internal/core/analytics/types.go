package analytics

import (
	"context"
	"time"
)

// OrderStatus is the lifecycle state stored on an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// Source is the read-only data collaborator the aggregator queries.
// Implementations must only count Completed orders toward revenue.
type Source interface {
	// AggregateWindows computes metrics for two contiguous windows plus the
	// current-window customer counts.
	AggregateWindows(ctx context.Context, current, previous Window) (WindowAggregate, error)

	// SalesByDay returns one bucket per calendar day with completed orders,
	// ascending. Days without orders are absent.
	SalesByDay(ctx context.Context, window Window) ([]SalesBucket, error)

	// TopProducts ranks products over the whole history by revenue
	// descending, ties by product id ascending.
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
}

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// PeriodMetrics aggregates completed orders over one window.
type PeriodMetrics struct {
	TotalRevenue        float64 `json:"total_revenue"`
	NetProfit           float64 `json:"net_profit"`
	OrderCount          int64   `json:"order_count"`
	UniqueCustomerCount int64   `json:"unique_customer_count"`
}

// WindowAggregate is the raw result of the two-window query.
type WindowAggregate struct {
	Current             PeriodMetrics
	Previous            PeriodMetrics
	ReturningCustomers  int64 // customers with more than one completed order in Current
	CustomersWithOrders int64 // customers with at least one completed order in Current
	NewCustomers        int64 // customers whose signup date falls in Current
}

// KPISnapshot is the KPI response. Field names are a wire contract with the
// dashboard frontend.
type KPISnapshot struct {
	Period                string        `json:"period"`
	Days                  int           `json:"days"`
	TotalRevenue          float64       `json:"total_revenue"`
	ARPU                  float64       `json:"arpu"`
	RetentionRate         float64       `json:"retention_rate"`
	TotalOrders           int64         `json:"total_orders"`
	NewCustomers          int64         `json:"new_customers"`
	NetProfit             float64       `json:"net_profit"`
	AverageOrderValue     float64       `json:"average_order_value"`
	TotalCustomers        int64         `json:"total_customers"`
	ProfitMargin          float64       `json:"profit_margin"`
	CustomerRetentionRate float64       `json:"customer_retention_rate"`
	RevenueTrend          float64       `json:"revenue_trend"`
	OrdersTrend           float64       `json:"orders_trend"`
	CustomersTrend        float64       `json:"customers_trend"`
	ProfitTrend           float64       `json:"profit_trend"`
	PreviousPeriod        PeriodMetrics `json:"previous_period"`
}

// SalesBucket is one calendar day of completed sales.
type SalesBucket struct {
	Period     string  `json:"period"` // YYYY-MM-DD
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	TotalSales float64 `json:"total_sales"`
	OrderCount int64   `json:"order_count"`
}

// ProductSales is a product's completed-order totals as read from the source.
type ProductSales struct {
	ProductID         int64
	ProductName       string
	Category          string
	Cost              float64
	Price             float64
	TotalQuantitySold int64
	TotalRevenue      float64
}

// TopPerformer is a ranked product with its unit margin.
type TopPerformer struct {
	ProductID         int64   `json:"product_id"`
	ProductName       string  `json:"product_name"`
	Category          string  `json:"category"`
	TotalQuantitySold int64   `json:"total_quantity_sold"`
	TotalRevenue      float64 `json:"total_revenue"`
	Cost              float64 `json:"cost"`
	Price             float64 `json:"price"`
	ProfitMargin      float64 `json:"profit_margin"`
	// Nil when cost is zero.
	ProfitMarginPercentage *float64 `json:"profit_margin_percentage"`
}

// Dashboard bundles the summary cards and charts for one period. The top
// products chart is all-time like GetTopPerformers.
type Dashboard struct {
	Period           string     `json:"period"`
	Days             int        `json:"days"`
	Cards            []StatCard `json:"cards"`
	SalesChart       ChartData  `json:"sales_chart"`
	TopProductsChart ChartData  `json:"top_products_chart"`
}

// ChartData represents generic chart data format
type ChartData struct {
	Type   string        `json:"type"`   // "line", "bar"
	Labels []string      `json:"labels"` // X-axis labels
	Data   []ChartSeries `json:"data"`   // Y-axis data series
}

// ChartSeries represents a data series in a chart
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color,omitempty"`
}

// StatCard represents a summary statistic card
type StatCard struct {
	Key         string  `json:"key"`
	Title       string  `json:"title"`
	Value       string  `json:"value"`
	RawValue    float64 `json:"raw_value"`
	Change      float64 `json:"change"`       // Percentage change
	ChangeLabel string  `json:"change_label"` // "vs previous 30 days"
	Trend       string  `json:"trend"`        // "up", "down", "neutral"
	Icon        string  `json:"icon,omitempty"`
}
