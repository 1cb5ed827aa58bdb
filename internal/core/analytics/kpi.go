package analytics

import "math"

// Trend is the percentage change from previous to current. A zero previous
// value yields 100 when current is positive and 0 otherwise.
func Trend(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// RetentionRate is the percentage of customers with orders that ordered more
// than once. Zero customers yields 0.
func RetentionRate(returning, withOrders int64) float64 {
	if withOrders == 0 {
		return 0
	}
	return 100 * float64(returning) / float64(withOrders)
}

// DeriveKPIs computes the KPI snapshot from a two-window aggregate. It does
// not set Period or Days.
func DeriveKPIs(agg WindowAggregate) KPISnapshot {
	cur, prev := agg.Current, agg.Previous
	retention := RetentionRate(agg.ReturningCustomers, agg.CustomersWithOrders)

	var arpu float64
	if cur.UniqueCustomerCount > 0 {
		arpu = cur.TotalRevenue / float64(cur.UniqueCustomerCount)
	}

	return KPISnapshot{
		TotalRevenue:          cur.TotalRevenue,
		ARPU:                  arpu,
		RetentionRate:         retention,
		TotalOrders:           cur.OrderCount,
		NewCustomers:          agg.NewCustomers,
		NetProfit:             cur.NetProfit,
		AverageOrderValue:     cur.TotalRevenue / float64(max(cur.OrderCount, 1)),
		TotalCustomers:        cur.UniqueCustomerCount,
		ProfitMargin:          cur.NetProfit / math.Max(cur.TotalRevenue, 1),
		CustomerRetentionRate: retention / 100,
		RevenueTrend:          Trend(cur.TotalRevenue, prev.TotalRevenue),
		OrdersTrend:           Trend(float64(cur.OrderCount), float64(prev.OrderCount)),
		CustomersTrend:        Trend(float64(cur.UniqueCustomerCount), float64(prev.UniqueCustomerCount)),
		ProfitTrend:           Trend(cur.NetProfit, prev.NetProfit),
		PreviousPeriod:        prev,
	}
}

// NewTopPerformer derives the unit margin fields for a ranked product.
func NewTopPerformer(p ProductSales) TopPerformer {
	margin := p.Price - p.Cost

	var marginPct *float64
	if p.Cost != 0 {
		pct := margin / p.Cost * 100
		marginPct = &pct
	}

	return TopPerformer{
		ProductID:              p.ProductID,
		ProductName:            p.ProductName,
		Category:               p.Category,
		TotalQuantitySold:      p.TotalQuantitySold,
		TotalRevenue:           p.TotalRevenue,
		Cost:                   p.Cost,
		Price:                  p.Price,
		ProfitMargin:           margin,
		ProfitMarginPercentage: marginPct,
	}
}
