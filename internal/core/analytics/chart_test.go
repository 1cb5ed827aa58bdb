package analytics

import "testing"

func TestToSalesLineChart(t *testing.T) {
	chart := ToSalesLineChart([]SalesBucket{
		{Period: "2024-01-01", TotalSales: 10, OrderCount: 1},
		{Period: "2024-01-03", TotalSales: 25.5, OrderCount: 2},
	})

	if chart.Type != "line" {
		t.Errorf("type = %s", chart.Type)
	}
	if len(chart.Labels) != 2 || chart.Labels[1] != "2024-01-03" {
		t.Errorf("labels = %v", chart.Labels)
	}
	if len(chart.Data) != 2 || chart.Data[0].Values[1] != 25.5 || chart.Data[1].Values[1] != 2 {
		t.Errorf("series = %+v", chart.Data)
	}
}

func TestToTopPerformersBarChart(t *testing.T) {
	chart := ToTopPerformersBarChart([]TopPerformer{{ProductName: "Lamp", TotalRevenue: 90}})
	if chart.Type != "bar" || chart.Labels[0] != "Lamp" || chart.Data[0].Values[0] != 90 {
		t.Errorf("chart = %+v", chart)
	}
}

func TestToStatCardsTrendDirection(t *testing.T) {
	cards := ToStatCards(KPISnapshot{Days: 30, RevenueTrend: 12.5, OrdersTrend: -3, RetentionRate: 40})

	byKey := map[string]StatCard{}
	for _, c := range cards {
		byKey[c.Key] = c
	}

	if c := byKey["total_revenue"]; c.Trend != "up" || c.ChangeLabel != "vs previous 30 days" {
		t.Errorf("revenue card = %+v", c)
	}
	if c := byKey["total_orders"]; c.Trend != "down" {
		t.Errorf("orders card trend = %s, want down", c.Trend)
	}
	if c := byKey["total_customers"]; c.Trend != "neutral" {
		t.Errorf("customers card trend = %s, want neutral", c.Trend)
	}
	if c := byKey["retention_rate"]; c.Value != "40.0%" || c.ChangeLabel != "" {
		t.Errorf("retention card = %+v", c)
	}
}

func TestFormatStatValue(t *testing.T) {
	tests := []struct {
		value  float64
		format string
		want   string
	}{
		{1234567.891, "currency", "$1,234,567.89"},
		{0, "currency", "$0.00"},
		{2500, "number", "2.5K"},
		{3200000, "number", "3.2M"},
		{42, "number", "42"},
		{12.345, "percentage", "12.3%"},
		{1.5, "", "1.50"},
	}

	for _, tt := range tests {
		if got := formatStatValue(tt.value, tt.format); got != tt.want {
			t.Errorf("formatStatValue(%v, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
		}
	}
}
