package services

import (
	"context"
	"strings"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/models"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/repositories"
)

type OrderService struct {
	orderRepo repositories.OrderRepo
}

func NewOrderService(orderRepo repositories.OrderRepo) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// ListOrders returns the most recent orders matching the filter
func (s *OrderService) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.OrderSummary, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Limit < 1 {
		filter.Limit = models.DefaultOrderLimit
	}
	return s.orderRepo.List(ctx, filter)
}

// GetOrder retrieves an order with its line items
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*models.OrderDetail, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// GetStats counts orders by status
func (s *OrderService) GetStats(ctx context.Context) (*models.OrderStats, error) {
	return s.orderRepo.Stats(ctx)
}
