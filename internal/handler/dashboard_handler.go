package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/middleware"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetStatistics handles GET /api/v1/dashboard/statistics
// @Summary Get admin dashboard statistics
// @Description Get tenant, room, unpaid bill and pending complaint totals plus per-room occupancy (admin only)
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.AdminDashboardResponse} "Statistics retrieved"
// @Failure 403 {object} utils.APIResponse "Admin privileges required"
// @Router /api/v1/dashboard/statistics [get]
func (h *DashboardHandler) GetStatistics(c *gin.Context) {
	stats, err := h.dashboardService.GetAdminDashboard(middleware.GetActor(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to get dashboard statistics")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Dashboard statistics retrieved successfully", stats)
}

// GetOwnDashboard handles GET /api/v1/me/dashboard
// @Summary Get tenant dashboard
// @Description Get the calling tenant's room, payment totals and outstanding bills
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.TenantDashboardResponse} "Dashboard retrieved"
// @Failure 403 {object} utils.APIResponse "Tenant profile required"
// @Router /api/v1/me/dashboard [get]
func (h *DashboardHandler) GetOwnDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.GetTenantDashboard(middleware.GetActor(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to get tenant dashboard")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved successfully", dashboard)
}
