package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/middleware"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// AssignRoomRequest represents the room assignment payload. A null room_id
// unassigns the tenant.
type AssignRoomRequest struct {
	RoomID *uint `json:"room_id" example:"2"`
}

// TenantHandler handles tenant HTTP requests
type TenantHandler struct {
	tenantService service.TenantService
	logger        *logger.Logger
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantService, logger *logger.Logger) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		logger:        logger,
	}
}

// ListTenants handles GET /api/v1/tenants
// @Summary List tenants
// @Description List all tenants with user and room details (admin only)
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]response.TenantListItem} "Tenants retrieved"
// @Failure 403 {object} utils.APIResponse "Admin privileges required"
// @Router /api/v1/tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.tenantService.ListTenants(middleware.GetActor(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list tenants")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Tenants retrieved successfully", tenants)
}

// GetTenant handles GET /api/v1/tenants/:id
// @Summary Get a tenant
// @Description Get a single tenant by ID (admin only)
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tenant ID"
// @Success 200 {object} utils.APIResponse{data=models.Tenant} "Tenant retrieved"
// @Failure 404 {object} utils.APIResponse "Tenant not found"
// @Router /api/v1/tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tenant ID", err)
		return
	}

	tenant, err := h.tenantService.GetTenant(middleware.GetActor(c), uint(id))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Tenant retrieved successfully", tenant)
}

// AssignRoom handles PUT /api/v1/tenants/:id/room
// @Summary Assign or unassign a room
// @Description Assign a tenant to a room, or unassign with a null room_id. Denied when the room is at capacity (admin only).
// @Tags tenants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tenant ID"
// @Param request body AssignRoomRequest true "Target room"
// @Success 200 {object} utils.APIResponse{data=models.Tenant} "Assignment updated"
// @Failure 403 {object} utils.APIResponse "Admin privileges required"
// @Failure 404 {object} utils.APIResponse "Tenant or room not found"
// @Failure 409 {object} utils.APIResponse "Room at capacity"
// @Router /api/v1/tenants/{id}/room [put]
func (h *TenantHandler) AssignRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tenant ID", err)
		return
	}

	var req AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid assignment payload")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	tenant, err := h.tenantService.AssignRoom(middleware.GetActor(c), uint(id), req.RoomID)
	if err != nil {
		h.logger.WithError(err).WithField("tenant_id", id).Error("Failed to assign room")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Room assignment updated successfully", tenant)
}

// DeleteTenant handles DELETE /api/v1/tenants/:id
// @Summary Delete a tenant
// @Description Delete a tenant with its bills, complaints and user account (admin only)
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tenant ID"
// @Success 200 {object} utils.APIResponse "Tenant deleted"
// @Failure 404 {object} utils.APIResponse "Tenant not found"
// @Router /api/v1/tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tenant ID", err)
		return
	}

	if err := h.tenantService.DeleteTenant(middleware.GetActor(c), uint(id)); err != nil {
		h.logger.WithError(err).WithField("tenant_id", id).Error("Failed to delete tenant")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Tenant deleted successfully", nil)
}

// GetOwnRoom handles GET /api/v1/me/room
// @Summary Get own room
// @Description Get the calling tenant's profile with room details
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=models.Tenant} "Profile retrieved"
// @Failure 403 {object} utils.APIResponse "Tenant profile required"
// @Router /api/v1/me/room [get]
func (h *TenantHandler) GetOwnRoom(c *gin.Context) {
	tenant, err := h.tenantService.GetOwnProfile(middleware.GetActor(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Profile retrieved successfully", tenant)
}
