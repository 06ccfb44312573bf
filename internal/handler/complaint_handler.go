package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/middleware"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// ComplaintRequest represents the tenant complaint payload
type ComplaintRequest struct {
	Subject string `json:"subject" binding:"required" example:"Leaking tap"`
	Message string `json:"message" binding:"required" example:"The tap in room 101 has been leaking for two days."`
}

// ComplaintStatusRequest represents the admin status change payload
type ComplaintStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Resolved"`
}

// ComplaintHandler handles complaint HTTP requests
type ComplaintHandler struct {
	complaintService service.ComplaintService
	logger           *logger.Logger
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService service.ComplaintService, logger *logger.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		logger:           logger,
	}
}

// CreateComplaint handles POST /api/v1/me/complaints
// @Summary File a complaint
// @Description File a new complaint for the calling tenant; it enters the Pending state
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ComplaintRequest true "Complaint data"
// @Success 201 {object} utils.APIResponse{data=models.Complaint} "Complaint filed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 403 {object} utils.APIResponse "Tenant profile required"
// @Router /api/v1/me/complaints [post]
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	var req ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid complaint payload")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	complaint, err := h.complaintService.CreateComplaint(middleware.GetActor(c), service.ComplaintInput{
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create complaint")
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Complaint submitted successfully", complaint)
}

// ListOwnComplaints handles GET /api/v1/me/complaints
// @Summary List own complaints
// @Description List the calling tenant's complaints, newest first
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]models.Complaint} "Complaints retrieved"
// @Failure 403 {object} utils.APIResponse "Tenant profile required"
// @Router /api/v1/me/complaints [get]
func (h *ComplaintHandler) ListOwnComplaints(c *gin.Context) {
	complaints, err := h.complaintService.ListOwnComplaints(middleware.GetActor(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Complaints retrieved successfully", complaints)
}

// ListComplaints handles GET /api/v1/complaints
// @Summary List complaints
// @Description List all complaints, optionally filtered by status (admin only)
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (Pending or Resolved)"
// @Success 200 {object} utils.APIResponse{data=[]models.Complaint} "Complaints retrieved"
// @Failure 403 {object} utils.APIResponse "Admin privileges required"
// @Router /api/v1/complaints [get]
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	var status *models.ComplaintStatus
	if raw := c.Query("status"); raw != "" {
		parsed := models.ComplaintStatus(raw)
		status = &parsed
	}

	complaints, err := h.complaintService.ListComplaints(middleware.GetActor(c), status)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list complaints")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Complaints retrieved successfully", complaints)
}

// UpdateComplaintStatus handles PUT /api/v1/complaints/:id/status
// @Summary Update complaint status
// @Description Move a complaint between Pending and Resolved; resolving stamps the resolved timestamp, reverting clears it (admin only)
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Param request body ComplaintStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse{data=models.Complaint} "Status updated"
// @Failure 400 {object} utils.APIResponse "Unknown status value"
// @Failure 403 {object} utils.APIResponse "Admin privileges required"
// @Failure 404 {object} utils.APIResponse "Complaint not found"
// @Router /api/v1/complaints/{id}/status [put]
func (h *ComplaintHandler) UpdateComplaintStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid complaint ID", err)
		return
	}

	var req ComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid status payload")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	complaint, err := h.complaintService.SetStatus(middleware.GetActor(c), uint(id), models.ComplaintStatus(req.Status))
	if err != nil {
		h.logger.WithError(err).WithField("complaint_id", id).Error("Failed to update complaint status")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Complaint status updated successfully", complaint)
}
