package handlers

import (
	"securepay-portal/internal/core/services"
	"securepay-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the staff dashboard read model
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns dashboard statistics
// @Summary Dashboard statistics
// @Description Counts and per-currency totals for the staff dashboard
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /staff/dashboard-stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve dashboard stats.")
	}

	return response.Success(c, "Dashboard stats retrieved successfully.", fiber.Map{
		"stats": stats,
	})
}
