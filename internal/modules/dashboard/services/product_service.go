package services

import (
	"context"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/models"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/repositories"
)

type ProductService struct {
	productRepo repositories.ProductRepo
}

func NewProductService(productRepo repositories.ProductRepo) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// ListProducts lists products ordered by name, optionally by category
func (s *ProductService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.productRepo.List(ctx, filter)
}

// ListCategories returns product counts and average price per category
func (s *ProductService) ListCategories(ctx context.Context) ([]models.CategoryStats, error) {
	return s.productRepo.Categories(ctx)
}
