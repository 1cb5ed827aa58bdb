package analytics

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ToSalesLineChart converts daily sales buckets to a two-series line chart.
func ToSalesLineChart(buckets []SalesBucket) ChartData {
	labels := make([]string, len(buckets))
	sales := make([]float64, len(buckets))
	orders := make([]float64, len(buckets))

	for i, b := range buckets {
		labels[i] = b.Period
		sales[i] = b.TotalSales
		orders[i] = float64(b.OrderCount)
	}

	return ChartData{
		Type:   "line",
		Labels: labels,
		Data: []ChartSeries{
			{Name: "total_sales", Values: sales, Color: "#3b82f6"},
			{Name: "order_count", Values: orders, Color: "#10b981"},
		},
	}
}

// ToTopPerformersBarChart converts ranked products to a revenue bar chart.
func ToTopPerformersBarChart(products []TopPerformer) ChartData {
	labels := make([]string, len(products))
	values := make([]float64, len(products))

	for i, p := range products {
		labels[i] = p.ProductName
		values[i] = p.TotalRevenue
	}

	return ChartData{
		Type:   "bar",
		Labels: labels,
		Data:   []ChartSeries{{Name: "total_revenue", Values: values}},
	}
}

// StatCardConfig represents configuration for a stat card
type StatCardConfig struct {
	Key    string
	Title  string
	Format string // "number", "currency", "percentage"
	Icon   string
	Value  func(KPISnapshot) float64
	Change func(KPISnapshot) (float64, bool)
}

var kpiCards = []StatCardConfig{
	{
		Key: "total_revenue", Title: "Total Revenue", Format: "currency", Icon: "dollar-sign",
		Value:  func(k KPISnapshot) float64 { return k.TotalRevenue },
		Change: func(k KPISnapshot) (float64, bool) { return k.RevenueTrend, true },
	},
	{
		Key: "total_orders", Title: "Orders", Format: "number", Icon: "shopping-cart",
		Value:  func(k KPISnapshot) float64 { return float64(k.TotalOrders) },
		Change: func(k KPISnapshot) (float64, bool) { return k.OrdersTrend, true },
	},
	{
		Key: "total_customers", Title: "Customers", Format: "number", Icon: "users",
		Value:  func(k KPISnapshot) float64 { return float64(k.TotalCustomers) },
		Change: func(k KPISnapshot) (float64, bool) { return k.CustomersTrend, true },
	},
	{
		Key: "net_profit", Title: "Net Profit", Format: "currency", Icon: "trending-up",
		Value:  func(k KPISnapshot) float64 { return k.NetProfit },
		Change: func(k KPISnapshot) (float64, bool) { return k.ProfitTrend, true },
	},
	{
		Key: "arpu", Title: "Revenue per Customer", Format: "currency", Icon: "user",
		Value: func(k KPISnapshot) float64 { return k.ARPU },
	},
	{
		Key: "retention_rate", Title: "Retention Rate", Format: "percentage", Icon: "repeat",
		Value: func(k KPISnapshot) float64 { return k.RetentionRate },
	},
}

// ToStatCards converts a KPI snapshot to the dashboard summary cards.
func ToStatCards(k KPISnapshot) []StatCard {
	label := fmt.Sprintf("vs previous %d days", k.Days)
	cards := make([]StatCard, 0, len(kpiCards))

	for _, cfg := range kpiCards {
		value := cfg.Value(k)
		card := StatCard{
			Key:      cfg.Key,
			Title:    cfg.Title,
			Value:    formatStatValue(value, cfg.Format),
			RawValue: value,
			Icon:     cfg.Icon,
			Trend:    "neutral",
		}

		if cfg.Change != nil {
			if change, ok := cfg.Change(k); ok {
				card.Change = change
				card.ChangeLabel = label
				card.Trend = trendDirection(change)
			}
		}

		cards = append(cards, card)
	}

	return cards
}

// Helper functions

func trendDirection(change float64) string {
	switch {
	case change > 0:
		return "up"
	case change < 0:
		return "down"
	default:
		return "neutral"
	}
}

func formatStatValue(num float64, format string) string {
	switch format {
	case "currency":
		return printer.Sprintf("$%.2f", num)
	case "percentage":
		return fmt.Sprintf("%.1f%%", num)
	case "number":
		if num >= 1000000 {
			return fmt.Sprintf("%.1fM", num/1000000)
		} else if num >= 1000 {
			return fmt.Sprintf("%.1fK", num/1000)
		}
		return fmt.Sprintf("%.0f", num)
	default:
		return fmt.Sprintf("%.2f", num)
	}
}
