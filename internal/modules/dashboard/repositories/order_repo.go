package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/models"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/apperr"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/metrics"
)

type OrderRepo interface {
	List(ctx context.Context, filter models.OrderFilter) ([]models.OrderSummary, error)
	GetByID(ctx context.Context, id int64) (*models.OrderDetail, error)
	Stats(ctx context.Context) (*models.OrderStats, error)
}

type orderRepo struct {
	db  *gorm.DB
	loc *time.Location
}

// NewOrderRepo creates an order repository. Timestamps read back are tagged
// with loc, the zone their wall-clock values were written in.
func NewOrderRepo(db *gorm.DB, loc *time.Location) OrderRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &orderRepo{db: db, loc: loc}
}

// likeEscaper makes user input match literally inside LIKE patterns.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// inLocation reinterprets a zone-less timestamp as wall-clock time in loc.
func inLocation(t time.Time, loc *time.Location) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

type orderSummaryRow struct {
	OrderID       int64
	CustomerName  string
	CustomerEmail string
	Status        string
	CreatedAt     time.Time
	TotalAmount   decimal.NullDecimal
	ItemsCount    int64
}

type orderStatsRow struct {
	Total        int64
	Completed    int64
	Pending      int64
	Cancelled    int64
	TotalRevenue decimal.Decimal
}

func (r *orderRepo) List(ctx context.Context, filter models.OrderFilter) (orders []models.OrderSummary, err error) {
	done := metrics.ObserveQuery("list_orders")
	defer func() { done(err) }()

	query := r.db.WithContext(ctx).
		Table("orders o").
		Select(`o.id AS order_id,
			c.name AS customer_name,
			c.email AS customer_email,
			o.status,
			o.created_at,
			SUM(oi.quantity * oi.unit_price) AS total_amount,
			COUNT(oi.id) AS items_count`).
		Joins("JOIN customers c ON c.id = o.customer_id").
		Joins("LEFT JOIN order_items oi ON oi.order_id = o.id")

	// Apply filters
	if filter.Status != "" {
		query = query.Where("o.status = ?", filter.Status)
	}

	if filter.Search != "" {
		searchPattern := containsPattern(filter.Search)
		query = query.Where(`c.name ILIKE ? ESCAPE '\' OR c.email ILIKE ? ESCAPE '\' OR CAST(o.id AS TEXT) LIKE ? ESCAPE '\'`,
			searchPattern, searchPattern, searchPattern)
	}

	limit := filter.Limit
	if limit < 1 {
		limit = models.DefaultOrderLimit
	}

	var rows []orderSummaryRow
	err = query.
		Group("o.id, c.name, c.email, o.status, o.created_at").
		Order("o.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.DataAccess("list orders", err)
	}

	orders = make([]models.OrderSummary, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, models.OrderSummary{
			OrderID:       row.OrderID,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			Status:        row.Status,
			CreatedAt:     inLocation(row.CreatedAt, r.loc),
			TotalAmount:   row.TotalAmount.Decimal.InexactFloat64(),
			ItemsCount:    row.ItemsCount,
		})
	}
	return orders, nil
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (order *models.OrderDetail, err error) {
	done := metrics.ObserveQuery("get_order")
	defer func() { done(err) }()

	var row models.Order
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Order{}).
			Preload("Customer").
			Preload("Items", func(db *gorm.DB) *gorm.DB {
				return db.Order("order_items.id")
			}).
			Preload("Items.Product").
			Take(&row, id).Error
	}, readOnly)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order %d", id)
	}
	if err != nil {
		return nil, apperr.DataAccess("get order", err)
	}

	return r.toOrderDetail(row), nil
}

func (r *orderRepo) toOrderDetail(row models.Order) *models.OrderDetail {
	detail := &models.OrderDetail{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Status:     string(row.Status),
		CreatedAt:  inLocation(row.CreatedAt, r.loc),
		Items:      make([]models.OrderItemDetail, 0, len(row.Items)),
	}
	if row.Customer != nil {
		detail.CustomerName = row.Customer.Name
		detail.CustomerEmail = row.Customer.Email
	}

	total := decimal.Zero
	for _, item := range row.Items {
		itemTotal := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(item.Quantity))
		total = total.Add(itemTotal)

		line := models.OrderItemDetail{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			ItemTotal: itemTotal.Round(2).InexactFloat64(),
		}
		if item.Product != nil {
			line.ProductName = item.Product.Name
			line.Category = item.Product.Category
		}
		detail.Items = append(detail.Items, line)
	}
	detail.TotalAmount = total.Round(2).InexactFloat64()

	return detail
}

func (r *orderRepo) Stats(ctx context.Context) (stats *models.OrderStats, err error) {
	done := metrics.ObserveQuery("order_stats")
	defer func() { done(err) }()

	var row orderStatsRow
	err = r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'Completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'Pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'Cancelled') AS cancelled,
			(SELECT COALESCE(SUM(oi.quantity * oi.unit_price), 0)
			   FROM order_items oi
			   JOIN orders co ON co.id = oi.order_id
			  WHERE co.status = 'Completed') AS total_revenue
		FROM orders`).Scan(&row).Error
	if err != nil {
		return nil, apperr.DataAccess("order stats", err)
	}

	return &models.OrderStats{
		Total:        row.Total,
		Completed:    row.Completed,
		Pending:      row.Pending,
		Cancelled:    row.Cancelled,
		TotalRevenue: row.TotalRevenue.InexactFloat64(),
	}, nil
}
