package analytics

import (
	"context"
	"testing"
	"time"
)

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

// fixture is anchored on 2024-06-15. With a 7 day period the current window
// is [06-09, 06-16) and the previous one [06-02, 06-09).
func fixture() Dataset {
	return Dataset{
		Customers: []CustomerRecord{
			{ID: 1, SignupDate: day(2024, 6, 10, 0)},
			{ID: 2, SignupDate: day(2024, 1, 1, 0)},
			{ID: 3, SignupDate: day(2024, 6, 15, 0)},
		},
		Products: []ProductRecord{
			{ID: 1, Name: "Widget", Category: "Electronics", Cost: 10, Price: 20},
			{ID: 2, Name: "Gadget", Category: "Toys", Cost: 0, Price: 15},
			{ID: 3, Name: "Gizmo", Category: "Sports", Cost: 5, Price: 8},
		},
		Orders: []OrderRecord{
			{ID: 1, CustomerID: 1, Status: StatusCompleted, CreatedAt: day(2024, 6, 10, 9)},
			{ID: 2, CustomerID: 1, Status: StatusCompleted, CreatedAt: day(2024, 6, 12, 14)},
			{ID: 3, CustomerID: 2, Status: StatusCompleted, CreatedAt: day(2024, 6, 12, 16)},
			{ID: 4, CustomerID: 2, Status: StatusPending, CreatedAt: day(2024, 6, 12, 18)},
			{ID: 5, CustomerID: 2, Status: StatusCompleted, CreatedAt: day(2024, 6, 5, 11)},
			{ID: 6, CustomerID: 3, Status: StatusCancelled, CreatedAt: day(2024, 6, 14, 8)},
			{ID: 7, CustomerID: 3, Status: StatusCompleted, CreatedAt: day(2024, 6, 16, 0)},
			{ID: 8, CustomerID: 3, Status: StatusCompleted, CreatedAt: day(2024, 6, 9, 0)},
		},
		Lines: []OrderLineRecord{
			{OrderID: 1, ProductID: 1, Quantity: 2, UnitPrice: 20},
			{OrderID: 2, ProductID: 2, Quantity: 1, UnitPrice: 15},
			{OrderID: 3, ProductID: 1, Quantity: 1, UnitPrice: 20},
			{OrderID: 4, ProductID: 1, Quantity: 5, UnitPrice: 20},
			{OrderID: 5, ProductID: 1, Quantity: 1, UnitPrice: 20},
			{OrderID: 6, ProductID: 2, Quantity: 3, UnitPrice: 15},
			{OrderID: 7, ProductID: 1, Quantity: 1, UnitPrice: 20},
			{OrderID: 8, ProductID: 2, Quantity: 2, UnitPrice: 15},
		},
	}
}

func fixtureWindows() (Window, Window) {
	return Windows(day(2024, 6, 15, 10), 7)
}

func TestMemorySourceAggregateWindows(t *testing.T) {
	src := NewMemorySource(fixture(), time.UTC)
	cur, prev := fixtureWindows()

	agg, err := src.AggregateWindows(context.Background(), cur, prev)
	if err != nil {
		t.Fatalf("AggregateWindows() error = %v", err)
	}

	wantCur := PeriodMetrics{TotalRevenue: 105, NetProfit: 75, OrderCount: 4, UniqueCustomerCount: 3}
	if agg.Current != wantCur {
		t.Errorf("current = %+v, want %+v", agg.Current, wantCur)
	}
	wantPrev := PeriodMetrics{TotalRevenue: 20, NetProfit: 10, OrderCount: 1, UniqueCustomerCount: 1}
	if agg.Previous != wantPrev {
		t.Errorf("previous = %+v, want %+v", agg.Previous, wantPrev)
	}
	if agg.ReturningCustomers != 1 || agg.CustomersWithOrders != 3 {
		t.Errorf("retention counts = %d/%d, want 1/3", agg.ReturningCustomers, agg.CustomersWithOrders)
	}
	if agg.NewCustomers != 2 {
		t.Errorf("new customers = %d, want 2", agg.NewCustomers)
	}
}

func TestMemorySourceIgnoresUnknownProductsInKPIs(t *testing.T) {
	data := fixture()
	data.Lines = append(data.Lines, OrderLineRecord{OrderID: 1, ProductID: 99, Quantity: 1, UnitPrice: 1000})

	src := NewMemorySource(data, time.UTC)
	cur, prev := fixtureWindows()
	agg, err := src.AggregateWindows(context.Background(), cur, prev)
	if err != nil {
		t.Fatal(err)
	}
	if agg.Current.TotalRevenue != 105 {
		t.Errorf("revenue = %v, want 105", agg.Current.TotalRevenue)
	}
}

func TestMemorySourceSalesByDay(t *testing.T) {
	src := NewMemorySource(fixture(), time.UTC)
	cur, _ := fixtureWindows()

	got, err := src.SalesByDay(context.Background(), cur)
	if err != nil {
		t.Fatalf("SalesByDay() error = %v", err)
	}

	want := []SalesBucket{
		{Period: "2024-06-09", Year: 2024, Month: 6, TotalSales: 30, OrderCount: 1},
		{Period: "2024-06-10", Year: 2024, Month: 6, TotalSales: 40, OrderCount: 1},
		{Period: "2024-06-12", Year: 2024, Month: 6, TotalSales: 35, OrderCount: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d buckets, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMemorySourceSalesByDayEmpty(t *testing.T) {
	src := NewMemorySource(Dataset{}, time.UTC)
	cur, _ := fixtureWindows()

	got, err := src.SalesByDay(context.Background(), cur)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d buckets, want 0", len(got))
	}
}

func TestMemorySourceTopProducts(t *testing.T) {
	src := NewMemorySource(fixture(), time.UTC)

	got, err := src.TopProducts(context.Background(), 5)
	if err != nil {
		t.Fatalf("TopProducts() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2: %+v", len(got), got)
	}
	if got[0].ProductID != 1 || got[0].TotalQuantitySold != 5 || got[0].TotalRevenue != 100 {
		t.Errorf("first = %+v, want Widget with 5 sold for 100", got[0])
	}
	if got[1].ProductID != 2 || got[1].TotalQuantitySold != 3 || got[1].TotalRevenue != 45 {
		t.Errorf("second = %+v, want Gadget with 3 sold for 45", got[1])
	}
}

func TestMemorySourceTopProductsTieBreak(t *testing.T) {
	data := Dataset{
		Products: []ProductRecord{
			{ID: 7, Name: "B", Cost: 1, Price: 2},
			{ID: 3, Name: "A", Cost: 1, Price: 2},
		},
		Orders: []OrderRecord{{ID: 1, CustomerID: 1, Status: StatusCompleted, CreatedAt: day(2024, 1, 1, 0)}},
		Lines: []OrderLineRecord{
			{OrderID: 1, ProductID: 7, Quantity: 1, UnitPrice: 10},
			{OrderID: 1, ProductID: 3, Quantity: 1, UnitPrice: 10},
		},
	}

	got, err := NewMemorySource(data, time.UTC).TopProducts(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ProductID != 3 {
		t.Errorf("got %+v, want product 3 first", got)
	}
}

func TestMemorySourceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cur, prev := fixtureWindows()
	if _, err := NewMemorySource(fixture(), nil).AggregateWindows(ctx, cur, prev); err == nil {
		t.Error("expected context error")
	}
}
