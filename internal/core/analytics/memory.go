package analytics

import (
	"context"
	"sort"
	"time"
)

// Record types for MemorySource. They mirror the stored tables.
type (
	CustomerRecord struct {
		ID         int64
		SignupDate time.Time
	}

	ProductRecord struct {
		ID       int64
		Name     string
		Category string
		Cost     float64
		Price    float64
	}

	OrderRecord struct {
		ID         int64
		CustomerID int64
		Status     OrderStatus
		CreatedAt  time.Time
	}

	OrderLineRecord struct {
		OrderID   int64
		ProductID int64
		Quantity  int64
		UnitPrice float64
	}
)

// Dataset is an in-memory copy of the order store.
type Dataset struct {
	Customers []CustomerRecord
	Products  []ProductRecord
	Orders    []OrderRecord
	Lines     []OrderLineRecord
}

// MemorySource is a Source over a Dataset. It applies the same joins as the
// SQL source: revenue and profit only count lines whose product exists,
// while daily sales count every line.
type MemorySource struct {
	data Dataset
	loc  *time.Location
}

// NewMemorySource creates a source over data. Day buckets use loc.
func NewMemorySource(data Dataset, loc *time.Location) *MemorySource {
	if loc == nil {
		loc = time.UTC
	}
	return &MemorySource{data: data, loc: loc}
}

type orderTotal struct {
	customerID int64
	revenue    float64
	cost       float64
}

// completedTotals sums lines of completed orders created inside w. Orders
// with no line joined to a known product are left out.
func (m *MemorySource) completedTotals(w Window) ([]int64, map[int64]*orderTotal) {
	costs := make(map[int64]float64, len(m.data.Products))
	for _, p := range m.data.Products {
		costs[p.ID] = p.Cost
	}

	orders := make(map[int64]OrderRecord)
	for _, o := range m.data.Orders {
		if o.Status == StatusCompleted && w.Contains(o.CreatedAt) {
			orders[o.ID] = o
		}
	}

	var ids []int64
	totals := make(map[int64]*orderTotal)
	for _, l := range m.data.Lines {
		o, ok := orders[l.OrderID]
		if !ok {
			continue
		}
		cost, ok := costs[l.ProductID]
		if !ok {
			continue
		}
		t, seen := totals[o.ID]
		if !seen {
			t = &orderTotal{customerID: o.CustomerID}
			totals[o.ID] = t
			ids = append(ids, o.ID)
		}
		t.revenue += float64(l.Quantity) * l.UnitPrice
		t.cost += float64(l.Quantity) * cost
	}
	return ids, totals
}

func (m *MemorySource) periodMetrics(w Window) (PeriodMetrics, map[int64]int64) {
	ids, totals := m.completedTotals(w)

	var pm PeriodMetrics
	ordersPerCustomer := make(map[int64]int64)
	for _, id := range ids {
		t := totals[id]
		pm.TotalRevenue += t.revenue
		pm.NetProfit += t.revenue - t.cost
		pm.OrderCount++
		ordersPerCustomer[t.customerID]++
	}
	pm.UniqueCustomerCount = int64(len(ordersPerCustomer))
	return pm, ordersPerCustomer
}

// AggregateWindows implements Source.
func (m *MemorySource) AggregateWindows(ctx context.Context, current, previous Window) (WindowAggregate, error) {
	if err := ctx.Err(); err != nil {
		return WindowAggregate{}, err
	}

	var agg WindowAggregate
	var perCustomer map[int64]int64
	agg.Current, perCustomer = m.periodMetrics(current)
	agg.Previous, _ = m.periodMetrics(previous)

	agg.CustomersWithOrders = int64(len(perCustomer))
	for _, n := range perCustomer {
		if n > 1 {
			agg.ReturningCustomers++
		}
	}

	for _, c := range m.data.Customers {
		if current.Contains(c.SignupDate) {
			agg.NewCustomers++
		}
	}
	return agg, nil
}

// SalesByDay implements Source.
func (m *MemorySource) SalesByDay(ctx context.Context, w Window) ([]SalesBucket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	days := make(map[int64]string)
	for _, o := range m.data.Orders {
		if o.Status == StatusCompleted && w.Contains(o.CreatedAt) {
			days[o.ID] = o.CreatedAt.In(m.loc).Format(time.DateOnly)
		}
	}

	byDay := make(map[string]*SalesBucket)
	counted := make(map[int64]bool)
	for _, l := range m.data.Lines {
		day, ok := days[l.OrderID]
		if !ok {
			continue
		}
		b, ok := byDay[day]
		if !ok {
			t, _ := time.ParseInLocation(time.DateOnly, day, m.loc)
			b = &SalesBucket{Period: day, Year: t.Year(), Month: int(t.Month())}
			byDay[day] = b
		}
		b.TotalSales += float64(l.Quantity) * l.UnitPrice
		if !counted[l.OrderID] {
			counted[l.OrderID] = true
			b.OrderCount++
		}
	}

	buckets := make([]SalesBucket, 0, len(byDay))
	for _, b := range byDay {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Period < buckets[j].Period })
	return buckets, nil
}

// TopProducts implements Source.
func (m *MemorySource) TopProducts(ctx context.Context, limit int) ([]ProductSales, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	completed := make(map[int64]bool)
	for _, o := range m.data.Orders {
		if o.Status == StatusCompleted {
			completed[o.ID] = true
		}
	}

	byProduct := make(map[int64]*ProductSales)
	for _, p := range m.data.Products {
		byProduct[p.ID] = &ProductSales{
			ProductID:   p.ID,
			ProductName: p.Name,
			Category:    p.Category,
			Cost:        p.Cost,
			Price:       p.Price,
		}
	}

	sold := make(map[int64]bool)
	for _, l := range m.data.Lines {
		ps, ok := byProduct[l.ProductID]
		if !ok || !completed[l.OrderID] {
			continue
		}
		ps.TotalQuantitySold += l.Quantity
		ps.TotalRevenue += float64(l.Quantity) * l.UnitPrice
		sold[l.ProductID] = true
	}

	ranked := make([]ProductSales, 0, len(sold))
	for id := range sold {
		ranked = append(ranked, *byProduct[id])
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalRevenue != ranked[j].TotalRevenue {
			return ranked[i].TotalRevenue > ranked[j].TotalRevenue
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
