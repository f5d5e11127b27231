package handler

import (
	"github.com/TheAdijagtap/erpx/internal/application/service"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles the dashboard summary request
// @Summary Dashboard summary
// @Description Get aggregate counts and totals across inventory, documents and payroll
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard summary retrieved successfully", summary)
}
