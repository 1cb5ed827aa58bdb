package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/services"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/apperr"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetKPIs godoc
// @Summary Key performance indicators
// @Description KPIs for the period with trends against the preceding period of equal length
// @Tags Analytics
// @Produce json
// @Param period query string false "7days, 1month, 3months, 6months, 9months or 12months" default(12months)
// @Success 200 {object} analytics.KPISnapshot
// @Failure 500 {object} map[string]interface{}
// @Router /api/analytics/kpis [get]
func (h *AnalyticsHandler) GetKPIs(c *fiber.Ctx) error {
	kpis, err := h.analyticsService.GetKPIs(c.UserContext(), c.Query("period"))
	if err != nil {
		return apperr.Respond(c, err, "No data found")
	}
	return c.JSON(kpis)
}

// GetSalesOverTime godoc
// @Summary Daily sales
// @Description Completed sales per calendar day of the period; days without orders are omitted
// @Tags Analytics
// @Produce json
// @Param period query string false "Period token" default(12months)
// @Success 200 {array} analytics.SalesBucket
// @Failure 500 {object} map[string]interface{}
// @Router /api/analytics/sales-over-time [get]
func (h *AnalyticsHandler) GetSalesOverTime(c *fiber.Ctx) error {
	series, err := h.analyticsService.GetSalesOverTime(c.UserContext(), c.Query("period"))
	if err != nil {
		return apperr.Respond(c, err, "No data found")
	}
	return c.JSON(series)
}

// GetDashboard godoc
// @Summary Dashboard cards and chart
// @Description KPI stat cards with daily sales and top product charts
// @Tags Analytics
// @Produce json
// @Param period query string false "Period token" default(12months)
// @Success 200 {object} analytics.Dashboard
// @Failure 500 {object} map[string]interface{}
// @Router /api/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := h.analyticsService.GetDashboard(c.UserContext(), c.Query("period"))
	if err != nil {
		return apperr.Respond(c, err, "No data found")
	}
	return c.JSON(dashboard)
}

// GetReport godoc
// @Summary Download KPI report
// @Description KPI, daily sales and top product tables as an xlsx or pdf file
// @Tags Analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Param period query string false "Period token" default(12months)
// @Param format query string false "xlsx or pdf" default(xlsx)
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/analytics/report [get]
func (h *AnalyticsHandler) GetReport(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid format, use xlsx or pdf",
		})
	}

	file, err := h.analyticsService.BuildReport(c.UserContext(), c.Query("period"), format)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return apperr.Respond(c, err, "No data found")
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return c.Send(file.Content)
}
