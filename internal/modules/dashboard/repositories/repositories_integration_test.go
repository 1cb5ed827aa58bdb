//go:build integration

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/models"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/seed"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/apperr"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/testinfra"
)

const migrationsDir = "../../../../migrations/analytics"

var seedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	db   *database.DB
	data *seed.Data
}

func setup(t *testing.T) fixture {
	t.Helper()
	pg := testinfra.StartPostgres(t, migrationsDir)

	cfg := seed.DefaultConfig()
	cfg.Customers, cfg.Products, cfg.Orders = 150, 25, 1200
	cfg.Seed = 7
	cfg.Now = seedNow

	data, err := seed.Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	data.Clean()

	raw, err := sql.Open("postgres", pg.DSN)
	if err != nil {
		t.Fatal(err)
	}
	defer raw.Close()
	if err := seed.Load(context.Background(), raw, data); err != nil {
		t.Fatalf("load: %v", err)
	}

	db, err := database.NewDB(&config.Config{
		DatabaseURL:     pg.DSN,
		Env:             "test",
		Timezone:        "UTC",
		DBMaxOpenConns:  5,
		DBMaxIdleConns:  2,
		DBConnLifetime:  time.Minute,
		SlowQueryWarnMs: 1000,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	return fixture{db: db, data: data}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6*math.Max(1, math.Abs(b))
}

func TestAnalyticsRepoMatchesMemorySource(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	repo := NewAnalyticsRepo(f.db.GORM)
	mem := analytics.NewMemorySource(f.data.Dataset(), time.UTC)

	for _, period := range []string{"7days", "1month", "6months", "12months"} {
		t.Run(period, func(t *testing.T) {
			current, previous := analytics.Windows(seedNow, analytics.ResolvePeriod(period))

			got, err := repo.AggregateWindows(ctx, current, previous)
			if err != nil {
				t.Fatal(err)
			}
			want, _ := mem.AggregateWindows(ctx, current, previous)

			if !approxEqual(got.Current.TotalRevenue, want.Current.TotalRevenue) ||
				!approxEqual(got.Current.NetProfit, want.Current.NetProfit) ||
				!approxEqual(got.Previous.TotalRevenue, want.Previous.TotalRevenue) {
				t.Errorf("money differs: got %+v, want %+v", got, want)
			}
			if got.Current.OrderCount != want.Current.OrderCount ||
				got.Current.UniqueCustomerCount != want.Current.UniqueCustomerCount ||
				got.Previous.OrderCount != want.Previous.OrderCount ||
				got.ReturningCustomers != want.ReturningCustomers ||
				got.CustomersWithOrders != want.CustomersWithOrders ||
				got.NewCustomers != want.NewCustomers {
				t.Errorf("counts differ: got %+v, want %+v", got, want)
			}

			gotSales, err := repo.SalesByDay(ctx, current)
			if err != nil {
				t.Fatal(err)
			}
			wantSales, _ := mem.SalesByDay(ctx, current)
			if len(gotSales) != len(wantSales) {
				t.Fatalf("sales days = %d, want %d", len(gotSales), len(wantSales))
			}
			for i := range gotSales {
				g, w := gotSales[i], wantSales[i]
				if g.Period != w.Period || g.OrderCount != w.OrderCount || !approxEqual(g.TotalSales, w.TotalSales) {
					t.Errorf("day %d = %+v, want %+v", i, g, w)
				}
			}
		})
	}

	gotTop, err := repo.TopProducts(ctx, analytics.TopPerformersLimit)
	if err != nil {
		t.Fatal(err)
	}
	wantTop, _ := mem.TopProducts(ctx, analytics.TopPerformersLimit)
	if len(gotTop) != len(wantTop) {
		t.Fatalf("top products = %d, want %d", len(gotTop), len(wantTop))
	}
	for i := range gotTop {
		if gotTop[i].ProductID != wantTop[i].ProductID || !approxEqual(gotTop[i].TotalRevenue, wantTop[i].TotalRevenue) {
			t.Errorf("rank %d = %+v, want %+v", i+1, gotTop[i], wantTop[i])
		}
	}
}

func TestAnalyticsRepoEmptyWindow(t *testing.T) {
	f := setup(t)
	repo := NewAnalyticsRepo(f.db.GORM)

	future := seedNow.AddDate(5, 0, 0)
	current, previous := analytics.Windows(future, 7)

	agg, err := repo.AggregateWindows(context.Background(), current, previous)
	if err != nil {
		t.Fatal(err)
	}
	if agg.Current.TotalRevenue != 0 || agg.Current.OrderCount != 0 || agg.CustomersWithOrders != 0 {
		t.Errorf("aggregate = %+v, want zeros", agg)
	}

	sales, err := repo.SalesByDay(context.Background(), current)
	if err != nil {
		t.Fatal(err)
	}
	if len(sales) != 0 {
		t.Errorf("sales = %+v, want none", sales)
	}
}

func TestOrderRepo(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	repo := NewOrderRepo(f.db.GORM, time.UTC)

	t.Run("list filters by status", func(t *testing.T) {
		orders, err := repo.List(ctx, models.OrderFilter{Status: analytics.StatusCancelled, Limit: 20})
		if err != nil {
			t.Fatal(err)
		}
		if len(orders) == 0 || len(orders) > 20 {
			t.Fatalf("got %d orders", len(orders))
		}
		for i, o := range orders {
			if o.Status != string(analytics.StatusCancelled) {
				t.Errorf("order %d has status %s", o.OrderID, o.Status)
			}
			if i > 0 && o.CreatedAt.After(orders[i-1].CreatedAt) {
				t.Errorf("orders not newest first at %d", i)
			}
		}
	})

	t.Run("get by id", func(t *testing.T) {
		first := f.data.Orders[0]
		order, err := repo.GetByID(ctx, first.ID)
		if err != nil {
			t.Fatal(err)
		}
		var want float64
		var lines int
		for _, l := range f.data.Lines {
			if l.OrderID == first.ID {
				want += float64(l.Quantity) * l.UnitPrice
				lines++
			}
		}
		if len(order.Items) != lines || !approxEqual(order.TotalAmount, want) {
			t.Errorf("order = %d items / %v, want %d / %v", len(order.Items), order.TotalAmount, lines, want)
		}
	})

	t.Run("get by id loads customer and products", func(t *testing.T) {
		first := f.data.Orders[0]
		order, err := repo.GetByID(ctx, first.ID)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range f.data.Customers {
			if c.ID == first.CustomerID && (order.CustomerName != c.Name || order.CustomerEmail != c.Email) {
				t.Errorf("customer = %s <%s>, want %s <%s>", order.CustomerName, order.CustomerEmail, c.Name, c.Email)
			}
		}
		for i, item := range order.Items {
			if item.ProductName == "" || item.Category == "" {
				t.Errorf("item %d has no product: %+v", i, item)
			}
			if i > 0 && item.ID < order.Items[i-1].ID {
				t.Errorf("items not in id order at %d", i)
			}
		}
	})

	t.Run("created_at carries the store timezone", func(t *testing.T) {
		wib := time.FixedZone("WIB", 7*60*60)
		first := f.data.Orders[0]

		order, err := NewOrderRepo(f.db.GORM, wib).GetByID(ctx, first.ID)
		if err != nil {
			t.Fatal(err)
		}
		const layout = "2006-01-02 15:04:05"
		if order.CreatedAt.Location() != wib || order.CreatedAt.Format(layout) != first.CreatedAt.Format(layout) {
			t.Errorf("created_at = %s, want wall clock %s in WIB", order.CreatedAt, first.CreatedAt.Format(layout))
		}
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		orders, err := repo.List(ctx, models.OrderFilter{Search: "%", Limit: 20})
		if err != nil {
			t.Fatal(err)
		}
		if len(orders) != 0 {
			t.Errorf("search %q matched %d orders, want none", "%", len(orders))
		}
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999)
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("err = %v, want not found", err)
		}
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := repo.Stats(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if stats.Total != int64(len(f.data.Orders)) || stats.Completed+stats.Pending+stats.Cancelled != stats.Total {
			t.Errorf("stats = %+v", stats)
		}
		if !approxEqual(stats.TotalRevenue, f.data.CompletedRevenue()) {
			t.Errorf("revenue = %v, want %v", stats.TotalRevenue, f.data.CompletedRevenue())
		}
	})
}

func TestCustomerModelSignupDate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	signup := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	created := models.Customer{
		Name:       "Literal Tester",
		Email:      "literal.tester@example.com",
		Region:     "West",
		SignupDate: datatypes.Date(signup),
	}
	if err := f.db.GORM.WithContext(ctx).Create(&created).Error; err != nil {
		t.Fatal(err)
	}

	var got models.Customer
	if err := f.db.GORM.WithContext(ctx).Take(&got, created.ID).Error; err != nil {
		t.Fatal(err)
	}
	if d := time.Time(got.SignupDate).Format("2006-01-02"); d != "2023-03-01" {
		t.Errorf("signup_date = %s, want 2023-03-01", d)
	}
	if got.Email != created.Email {
		t.Errorf("email = %s, want %s", got.Email, created.Email)
	}
}

func TestProductRepo(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	repo := NewProductRepo(f.db.GORM)

	products, err := repo.List(ctx, models.ProductFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != len(f.data.Products) {
		t.Fatalf("products = %d, want %d", len(products), len(f.data.Products))
	}

	categories, err := repo.Categories(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var total int64
	for _, c := range categories {
		total += c.ProductCount
		filtered, err := repo.List(ctx, models.ProductFilter{Category: c.Category})
		if err != nil {
			t.Fatal(err)
		}
		if int64(len(filtered)) != c.ProductCount {
			t.Errorf("%s: %d products, count says %d", c.Category, len(filtered), c.ProductCount)
		}
	}
	if total != int64(len(products)) {
		t.Errorf("category counts sum to %d, want %d", total, len(products))
	}
}
