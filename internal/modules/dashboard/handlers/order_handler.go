package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/models"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/services"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/apperr"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// ListOrders godoc
// @Summary List orders
// @Description Most recent orders with totals and item counts
// @Tags Orders
// @Produce json
// @Param status query string false "Pending, Completed or Cancelled"
// @Param search query string false "Match customer name, email or order id"
// @Param limit query int false "Maximum rows" default(10000)
// @Success 200 {array} models.OrderSummary
// @Failure 500 {object} map[string]interface{}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	// Non-numeric limits coerce to the default
	limit := c.QueryInt("limit", models.DefaultOrderLimit)

	orders, err := h.orderService.ListOrders(c.UserContext(), models.OrderFilter{
		Status: analytics.OrderStatus(c.Query("status")),
		Search: c.Query("search"),
		Limit:  limit,
	})
	if err != nil {
		return apperr.Respond(c, err, "Orders not found")
	}
	return c.JSON(orders)
}

// GetOrderStats godoc
// @Summary Order statistics
// @Description Order counts per status and completed revenue
// @Tags Orders
// @Produce json
// @Success 200 {object} models.OrderStats
// @Failure 500 {object} map[string]interface{}
// @Router /api/orders/stats [get]
func (h *OrderHandler) GetOrderStats(c *fiber.Ctx) error {
	stats, err := h.orderService.GetStats(c.UserContext())
	if err != nil {
		return apperr.Respond(c, err, "No data found")
	}
	return c.JSON(stats)
}

// GetOrder godoc
// @Summary Get order by ID
// @Description Order with its line items and total
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.OrderDetail
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order ID",
		})
	}

	order, err := h.orderService.GetOrder(c.UserContext(), id)
	if err != nil {
		return apperr.Respond(c, err, "Order not found")
	}
	return c.JSON(order)
}
