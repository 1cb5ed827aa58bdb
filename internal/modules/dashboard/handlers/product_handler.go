package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/models"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/services"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/apperr"
)

type ProductHandler struct {
	productService   *services.ProductService
	analyticsService *services.AnalyticsService
}

func NewProductHandler(productService *services.ProductService, analyticsService *services.AnalyticsService) *ProductHandler {
	return &ProductHandler{
		productService:   productService,
		analyticsService: analyticsService,
	}
}

// ListProducts godoc
// @Summary List products
// @Description Products ordered by name
// @Tags Products
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]interface{}
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.productService.ListProducts(c.UserContext(), models.ProductFilter{
		Category: c.Query("category"),
	})
	if err != nil {
		return apperr.Respond(c, err, "Products not found")
	}
	return c.JSON(products)
}

// ListCategories godoc
// @Summary Product categories
// @Description Product count and average price per category
// @Tags Products
// @Produce json
// @Success 200 {array} models.CategoryStats
// @Failure 500 {object} map[string]interface{}
// @Router /api/products/categories [get]
func (h *ProductHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.productService.ListCategories(c.UserContext())
	if err != nil {
		return apperr.Respond(c, err, "Categories not found")
	}
	return c.JSON(categories)
}

// GetTopPerformers godoc
// @Summary Top performing products
// @Description Five products with the highest revenue from completed orders of all time
// @Tags Products
// @Produce json
// @Success 200 {array} analytics.TopPerformer
// @Failure 500 {object} map[string]interface{}
// @Router /api/products/top-performers [get]
func (h *ProductHandler) GetTopPerformers(c *fiber.Ctx) error {
	products, err := h.analyticsService.GetTopPerformers(c.UserContext())
	if err != nil {
		return apperr.Respond(c, err, "No data found")
	}
	return c.JSON(products)
}
