package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/models"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/apperr"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/metrics"
)

type ProductRepo interface {
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.CategoryStats, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepo {
	return &productRepo{db: db}
}

type categoryStatsRow struct {
	Category     string
	ProductCount int64
	AvgPrice     decimal.NullDecimal
}

func (r *productRepo) List(ctx context.Context, filter models.ProductFilter) (products []models.Product, err error) {
	done := metrics.ObserveQuery("list_products")
	defer func() { done(err) }()

	query := r.db.WithContext(ctx).Model(&models.Product{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	products = []models.Product{}
	if err = query.Order("name ASC").Find(&products).Error; err != nil {
		return nil, apperr.DataAccess("list products", err)
	}
	return products, nil
}

func (r *productRepo) Categories(ctx context.Context) (categories []models.CategoryStats, err error) {
	done := metrics.ObserveQuery("product_categories")
	defer func() { done(err) }()

	var rows []categoryStatsRow
	err = r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("category, COUNT(*) AS product_count, AVG(price) AS avg_price").
		Group("category").
		Order("category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.DataAccess("product categories", err)
	}

	categories = make([]models.CategoryStats, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, models.CategoryStats{
			Category:     row.Category,
			ProductCount: row.ProductCount,
			AvgPrice:     row.AvgPrice.Decimal.Round(2).InexactFloat64(),
		})
	}
	return categories, nil
}
