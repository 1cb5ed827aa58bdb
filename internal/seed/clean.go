package seed

import (
	"strings"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/analytics"
)

// CleanStats counts the rows Clean dropped per table.
type CleanStats struct {
	Customers int
	Products  int
	Orders    int
	Lines     int
}

// Clean drops invalid rows and everything that references them:
// customers without a plausible email, products with non-positive cost or
// price or a price below cost, and lines with a non-positive quantity or a
// negative unit price.
func (d *Data) Clean() CleanStats {
	var stats CleanStats

	customers := make(map[int64]struct{}, len(d.Customers))
	kept := d.Customers[:0]
	for _, c := range d.Customers {
		if !strings.Contains(c.Email, "@") || !strings.Contains(c.Email, ".") {
			stats.Customers++
			continue
		}
		customers[c.ID] = struct{}{}
		kept = append(kept, c)
	}
	d.Customers = kept

	products := make(map[int64]struct{}, len(d.Products))
	keptProducts := d.Products[:0]
	for _, p := range d.Products {
		if p.Cost <= 0 || p.Price <= 0 || p.Price < p.Cost {
			stats.Products++
			continue
		}
		products[p.ID] = struct{}{}
		keptProducts = append(keptProducts, p)
	}
	d.Products = keptProducts

	orders := make(map[int64]struct{}, len(d.Orders))
	keptOrders := d.Orders[:0]
	for _, o := range d.Orders {
		if _, ok := customers[o.CustomerID]; !ok {
			stats.Orders++
			continue
		}
		orders[o.ID] = struct{}{}
		keptOrders = append(keptOrders, o)
	}
	d.Orders = keptOrders

	keptLines := d.Lines[:0]
	for _, l := range d.Lines {
		_, orderOK := orders[l.OrderID]
		_, productOK := products[l.ProductID]
		if !orderOK || !productOK || l.Quantity <= 0 || l.UnitPrice < 0 {
			stats.Lines++
			continue
		}
		keptLines = append(keptLines, l)
	}
	d.Lines = keptLines

	return stats
}

// Dataset converts the generated store for use with analytics.MemorySource.
func (d *Data) Dataset() analytics.Dataset {
	customers := make([]analytics.CustomerRecord, 0, len(d.Customers))
	for _, c := range d.Customers {
		customers = append(customers, c.CustomerRecord)
	}
	return analytics.Dataset{
		Customers: customers,
		Products:  d.Products,
		Orders:    d.Orders,
		Lines:     d.Lines,
	}
}

// CompletedRevenue sums quantity * unit_price over lines of completed orders.
func (d *Data) CompletedRevenue() float64 {
	completed := make(map[int64]bool, len(d.Orders))
	for _, o := range d.Orders {
		completed[o.ID] = o.Status == analytics.StatusCompleted
	}

	var total float64
	for _, l := range d.Lines {
		if completed[l.OrderID] {
			total += float64(l.Quantity) * l.UnitPrice
		}
	}
	return roundCents(total)
}
