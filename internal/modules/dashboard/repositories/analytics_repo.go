package repositories

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/apperr"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/metrics"
)

// AnalyticsRepo is the Postgres implementation of analytics.Source.
type AnalyticsRepo interface {
	analytics.Source
}

type analyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) AnalyticsRepo {
	return &analyticsRepo{db: db}
}

var readOnly = &sql.TxOptions{ReadOnly: true}

// Timestamps are stored without a zone as wall-clock time of the configured
// timezone, so window bounds compare directly and to_char yields local days.
const windowAggregateSQL = `
WITH completed AS (
	SELECT o.id, o.customer_id,
	       o.created_at >= @current_start AS is_current,
	       SUM(oi.quantity * oi.unit_price) AS revenue,
	       SUM(oi.quantity * p.cost) AS cost
	FROM orders o
	JOIN order_items oi ON oi.order_id = o.id
	JOIN products p ON p.id = oi.product_id
	WHERE o.status = 'Completed'
	  AND o.created_at >= @previous_start
	  AND o.created_at < @current_end
	GROUP BY o.id, o.customer_id, o.created_at
),
per_customer AS (
	SELECT customer_id, COUNT(*) AS orders
	FROM completed
	WHERE is_current
	GROUP BY customer_id
)
SELECT
	COALESCE(SUM(revenue) FILTER (WHERE is_current), 0)            AS current_revenue,
	COALESCE(SUM(revenue - cost) FILTER (WHERE is_current), 0)     AS current_profit,
	COUNT(*) FILTER (WHERE is_current)                             AS current_orders,
	COUNT(DISTINCT customer_id) FILTER (WHERE is_current)          AS current_customers,
	COALESCE(SUM(revenue) FILTER (WHERE NOT is_current), 0)        AS previous_revenue,
	COALESCE(SUM(revenue - cost) FILTER (WHERE NOT is_current), 0) AS previous_profit,
	COUNT(*) FILTER (WHERE NOT is_current)                         AS previous_orders,
	COUNT(DISTINCT customer_id) FILTER (WHERE NOT is_current)      AS previous_customers,
	(SELECT COUNT(*) FROM per_customer WHERE orders > 1)           AS returning_customers,
	(SELECT COUNT(*) FROM per_customer)                            AS customers_with_orders,
	(SELECT COUNT(*) FROM customers
	  WHERE signup_date >= @current_start AND signup_date < @current_end) AS new_customers
FROM completed`

const salesByDaySQL = `
SELECT
	to_char(o.created_at, 'YYYY-MM-DD')     AS period,
	EXTRACT(YEAR FROM o.created_at)::int    AS year,
	EXTRACT(MONTH FROM o.created_at)::int   AS month,
	SUM(oi.quantity * oi.unit_price)        AS total_sales,
	COUNT(DISTINCT o.id)                    AS order_count
FROM orders o
JOIN order_items oi ON oi.order_id = o.id
WHERE o.status = 'Completed'
  AND o.created_at >= @start
  AND o.created_at < @end
GROUP BY 1, 2, 3
ORDER BY 1`

const topProductsSQL = `
SELECT
	p.id                             AS product_id,
	p.name                           AS product_name,
	p.category,
	p.cost,
	p.price,
	SUM(oi.quantity)                 AS total_quantity_sold,
	SUM(oi.quantity * oi.unit_price) AS total_revenue
FROM order_items oi
JOIN orders o ON o.id = oi.order_id
JOIN products p ON p.id = oi.product_id
WHERE o.status = 'Completed'
GROUP BY p.id, p.name, p.category, p.cost, p.price
ORDER BY total_revenue DESC, p.id ASC
LIMIT @limit`

type windowAggregateRow struct {
	CurrentRevenue      decimal.Decimal
	CurrentProfit       decimal.Decimal
	CurrentOrders       int64
	CurrentCustomers    int64
	PreviousRevenue     decimal.Decimal
	PreviousProfit      decimal.Decimal
	PreviousOrders      int64
	PreviousCustomers   int64
	ReturningCustomers  int64
	CustomersWithOrders int64
	NewCustomers        int64
}

func (r windowAggregateRow) toAggregate() analytics.WindowAggregate {
	return analytics.WindowAggregate{
		Current: analytics.PeriodMetrics{
			TotalRevenue:        r.CurrentRevenue.InexactFloat64(),
			NetProfit:           r.CurrentProfit.InexactFloat64(),
			OrderCount:          r.CurrentOrders,
			UniqueCustomerCount: r.CurrentCustomers,
		},
		Previous: analytics.PeriodMetrics{
			TotalRevenue:        r.PreviousRevenue.InexactFloat64(),
			NetProfit:           r.PreviousProfit.InexactFloat64(),
			OrderCount:          r.PreviousOrders,
			UniqueCustomerCount: r.PreviousCustomers,
		},
		ReturningCustomers:  r.ReturningCustomers,
		CustomersWithOrders: r.CustomersWithOrders,
		NewCustomers:        r.NewCustomers,
	}
}

type salesBucketRow struct {
	Period     string
	Year       int
	Month      int
	TotalSales decimal.NullDecimal
	OrderCount int64
}

func (r salesBucketRow) toBucket() analytics.SalesBucket {
	return analytics.SalesBucket{
		Period:     r.Period,
		Year:       r.Year,
		Month:      r.Month,
		TotalSales: r.TotalSales.Decimal.InexactFloat64(),
		OrderCount: r.OrderCount,
	}
}

type productSalesRow struct {
	ProductID         int64
	ProductName       string
	Category          string
	Cost              decimal.Decimal
	Price             decimal.Decimal
	TotalQuantitySold int64
	TotalRevenue      decimal.NullDecimal
}

func (r productSalesRow) toProductSales() analytics.ProductSales {
	return analytics.ProductSales{
		ProductID:         r.ProductID,
		ProductName:       r.ProductName,
		Category:          r.Category,
		Cost:              r.Cost.InexactFloat64(),
		Price:             r.Price.InexactFloat64(),
		TotalQuantitySold: r.TotalQuantitySold,
		TotalRevenue:      r.TotalRevenue.Decimal.InexactFloat64(),
	}
}

func (r *analyticsRepo) AggregateWindows(ctx context.Context, current, previous analytics.Window) (agg analytics.WindowAggregate, err error) {
	done := metrics.ObserveQuery("aggregate_windows")
	defer func() { done(err) }()

	var row windowAggregateRow
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Raw(windowAggregateSQL, map[string]interface{}{
			"previous_start": previous.Start,
			"current_start":  current.Start,
			"current_end":    current.End,
		}).Scan(&row).Error
	}, readOnly)
	if err != nil {
		return agg, apperr.DataAccess("aggregate windows", err)
	}
	return row.toAggregate(), nil
}

func (r *analyticsRepo) SalesByDay(ctx context.Context, window analytics.Window) (buckets []analytics.SalesBucket, err error) {
	done := metrics.ObserveQuery("sales_by_day")
	defer func() { done(err) }()

	var rows []salesBucketRow
	err = r.db.WithContext(ctx).Raw(salesByDaySQL, map[string]interface{}{
		"start": window.Start,
		"end":   window.End,
	}).Scan(&rows).Error
	if err != nil {
		return nil, apperr.DataAccess("sales by day", err)
	}

	buckets = make([]analytics.SalesBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, row.toBucket())
	}
	return buckets, nil
}

func (r *analyticsRepo) TopProducts(ctx context.Context, limit int) (products []analytics.ProductSales, err error) {
	done := metrics.ObserveQuery("top_products")
	defer func() { done(err) }()

	var rows []productSalesRow
	err = r.db.WithContext(ctx).Raw(topProductsSQL, map[string]interface{}{
		"limit": limit,
	}).Scan(&rows).Error
	if err != nil {
		return nil, apperr.DataAccess("top products", err)
	}

	products = make([]analytics.ProductSales, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toProductSales())
	}
	return products, nil
}
