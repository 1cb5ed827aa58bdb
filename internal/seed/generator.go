package seed

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/analytics"
)

var (
	categories = []string{"Electronics", "Furniture", "Accessories", "Clothing", "Books", "Home & Garden"}
	regions    = []string{"North America", "Europe", "Asia", "Latin America", "Africa", "Oceania"}
	tiers      = []string{"Pro", "Plus", "Max", "Lite", "Premium", "Standard"}

	statuses      = []any{analytics.StatusCompleted, analytics.StatusPending, analytics.StatusCancelled}
	statusWeights = []float32{0.80, 0.15, 0.05}
)

// Config controls the size and shape of the generated store.
type Config struct {
	Customers int
	Products  int
	Orders    int
	MinItems  int
	MaxItems  int
	Seed      uint64 // 0 picks a random seed
	Now       time.Time
	Location  *time.Location
}

// DefaultConfig generates 2000 customers, 100 products and 10000 orders of
// one to five lines each.
func DefaultConfig() Config {
	return Config{
		Customers: 2000,
		Products:  100,
		Orders:    10000,
		MinItems:  1,
		MaxItems:  5,
		Now:       time.Now(),
		Location:  time.UTC,
	}
}

// Customer is a generated customer with its contact details.
type Customer struct {
	analytics.CustomerRecord
	Name   string
	Email  string
	Region string
}

// Data is a generated store ready to be cleaned and loaded.
type Data struct {
	Customers []Customer
	Products  []analytics.ProductRecord
	Orders    []analytics.OrderRecord
	Lines     []analytics.OrderLineRecord
}

// Generate builds customers, products and orders. Signups fall in the last
// two years and orders in the last year, both in cfg.Location wall-clock.
func Generate(cfg Config) (*Data, error) {
	if cfg.Customers < 1 || cfg.Products < 1 {
		return nil, fmt.Errorf("need at least one customer and one product, got %d/%d", cfg.Customers, cfg.Products)
	}
	if cfg.MinItems < 1 || cfg.MaxItems < cfg.MinItems {
		return nil, fmt.Errorf("invalid items per order range %d..%d", cfg.MinItems, cfg.MaxItems)
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}

	f := gofakeit.New(cfg.Seed)
	now := cfg.Now.In(cfg.Location)

	data := &Data{
		Customers: generateCustomers(f, cfg.Customers, now),
		Products:  generateProducts(f, cfg.Products),
	}
	if err := data.generateOrders(f, cfg, now); err != nil {
		return nil, err
	}
	return data, nil
}

func generateCustomers(f *gofakeit.Faker, n int, now time.Time) []Customer {
	customers := make([]Customer, 0, n)
	emails := make(map[string]struct{}, n)
	from := now.AddDate(-2, 0, 0)

	for i := 1; i <= n; i++ {
		email := f.Email()
		for attempt := 0; attempt < 5; attempt++ {
			if _, dup := emails[email]; !dup {
				break
			}
			email = f.Email()
		}
		if _, dup := emails[email]; dup {
			email = fmt.Sprintf("customer%d.%s", i, email)
		}
		emails[email] = struct{}{}

		customers = append(customers, Customer{
			CustomerRecord: analytics.CustomerRecord{
				ID:         int64(i),
				SignupDate: analytics.StartOfDay(f.DateRange(from, now).In(now.Location())),
			},
			Name:   f.Name(),
			Email:  email,
			Region: f.RandomString(regions),
		})
	}
	return customers
}

func generateProducts(f *gofakeit.Faker, n int) []analytics.ProductRecord {
	products := make([]analytics.ProductRecord, 0, n)
	for i := 1; i <= n; i++ {
		cost := roundCents(f.Float64Range(5, 500))
		markup := f.Float64Range(1.2, 3.0)

		products = append(products, analytics.ProductRecord{
			ID:       int64(i),
			Name:     fmt.Sprintf("%s %s %s", title(f.Word()), title(f.Word()), f.RandomString(tiers)),
			Category: f.RandomString(categories),
			Cost:     cost,
			Price:    roundCents(cost * markup),
		})
	}
	return products
}

func (d *Data) generateOrders(f *gofakeit.Faker, cfg Config, now time.Time) error {
	from := now.AddDate(-1, 0, 0)
	maxItems := min(cfg.MaxItems, len(d.Products))
	minItems := min(cfg.MinItems, maxItems)

	productIdx := make([]int, len(d.Products))
	for i := range productIdx {
		productIdx[i] = i
	}

	d.Orders = make([]analytics.OrderRecord, 0, cfg.Orders)
	for id := int64(1); id <= int64(cfg.Orders); id++ {
		status, err := f.Weighted(statuses, statusWeights)
		if err != nil {
			return fmt.Errorf("pick order status: %w", err)
		}

		d.Orders = append(d.Orders, analytics.OrderRecord{
			ID:         id,
			CustomerID: d.Customers[f.IntRange(0, len(d.Customers)-1)].ID,
			Status:     status.(analytics.OrderStatus),
			CreatedAt:  f.DateRange(from, now).In(now.Location()).Truncate(time.Second),
		})

		// distinct products per order
		f.ShuffleInts(productIdx)
		for _, idx := range productIdx[:f.IntRange(minItems, maxItems)] {
			product := d.Products[idx]
			d.Lines = append(d.Lines, analytics.OrderLineRecord{
				OrderID:   id,
				ProductID: product.ID,
				Quantity:  int64(f.IntRange(1, 5)),
				UnitPrice: product.Price,
			})
		}
	}
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
