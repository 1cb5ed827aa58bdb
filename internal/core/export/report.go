package export

import (
	"fmt"
	"math"
	"time"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/analytics"
)

// BuildKPIReport lays out the KPI snapshot, its daily sales and the top
// products as report sections.
func BuildKPIReport(k *analytics.KPISnapshot, sales []analytics.SalesBucket, top []analytics.TopPerformer, now time.Time) *Report {
	return &Report{
		Title:       "Sales Analytics Report",
		Description: fmt.Sprintf("Period: %s (last %d days, compared with the %d days before)", k.Period, k.Days, k.Days),
		CreatedAt:   now,
		Style:       DefaultStyle(),
		Sections: []Section{
			kpiSection(k),
			salesSection(sales),
			topPerformersSection(top),
		},
	}
}

func kpiSection(k *analytics.KPISnapshot) Section {
	prev := k.PreviousPeriod
	return Section{
		Title:   "KPIs",
		Headers: []string{"Metric", "Current", "Previous", "Trend %"},
		Rows: [][]interface{}{
			{"Total Revenue", round2(k.TotalRevenue), round2(prev.TotalRevenue), round2(k.RevenueTrend)},
			{"Net Profit", round2(k.NetProfit), round2(prev.NetProfit), round2(k.ProfitTrend)},
			{"Orders", k.TotalOrders, prev.OrderCount, round2(k.OrdersTrend)},
			{"Customers", k.TotalCustomers, prev.UniqueCustomerCount, round2(k.CustomersTrend)},
			{"New Customers", k.NewCustomers, "", ""},
			{"ARPU", round2(k.ARPU), "", ""},
			{"Average Order Value", round2(k.AverageOrderValue), "", ""},
			{"Profit Margin", round2(k.ProfitMargin), "", ""},
			{"Retention Rate %", round2(k.RetentionRate), "", ""},
		},
	}
}

func salesSection(sales []analytics.SalesBucket) Section {
	rows := make([][]interface{}, 0, len(sales))
	for _, b := range sales {
		rows = append(rows, []interface{}{b.Period, round2(b.TotalSales), b.OrderCount})
	}
	return Section{
		Title:   "Daily Sales",
		Headers: []string{"Date", "Total Sales", "Orders"},
		Rows:    rows,
	}
}

func topPerformersSection(top []analytics.TopPerformer) Section {
	rows := make([][]interface{}, 0, len(top))
	for _, p := range top {
		var pct interface{} = "n/a"
		if p.ProfitMarginPercentage != nil {
			pct = round2(*p.ProfitMarginPercentage)
		}
		rows = append(rows, []interface{}{
			p.ProductName, p.Category, p.TotalQuantitySold, round2(p.TotalRevenue), round2(p.ProfitMargin), pct,
		})
	}
	return Section{
		Title:   "Top Products",
		Headers: []string{"Product", "Category", "Sold", "Revenue", "Unit Margin", "Margin %"},
		Rows:    rows,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
