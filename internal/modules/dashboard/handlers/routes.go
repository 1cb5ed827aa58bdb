package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the dashboard API under router.
func RegisterRoutes(router fiber.Router, analytics *AnalyticsHandler, products *ProductHandler, orders *OrderHandler) {
	// Analytics routes
	router.Get("/analytics/kpis", analytics.GetKPIs)
	router.Get("/analytics/sales-over-time", analytics.GetSalesOverTime)
	router.Get("/analytics/dashboard", analytics.GetDashboard)
	router.Get("/analytics/report", analytics.GetReport)

	// Product routes
	router.Get("/products", products.ListProducts)
	router.Get("/products/categories", products.ListCategories)
	router.Get("/products/top-performers", products.GetTopPerformers)

	// Order routes (stats before :id)
	router.Get("/orders", orders.ListOrders)
	router.Get("/orders/stats", orders.GetOrderStats)
	router.Get("/orders/:id", orders.GetOrder)
}
