package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/middleware"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// BillCreateRequest represents the admin bill creation payload
type BillCreateRequest struct {
	TenantID uint    `json:"tenant_id" binding:"required" example:"4"`
	Month    string  `json:"month" binding:"required" example:"January 2024"`
	Amount   float64 `json:"amount" binding:"min=0" example:"5000"`
}

// BillUpdateRequest represents the admin bill edit payload. The submitted
// status is written as given; paid_at is set or cleared explicitly.
type BillUpdateRequest struct {
	Month  string     `json:"month" binding:"required" example:"January 2024"`
	Amount float64    `json:"amount" binding:"min=0" example:"5000"`
	Status string     `json:"status" binding:"required" example:"Paid"`
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

// BillHandler handles bill HTTP requests
type BillHandler struct {
	billService service.BillService
	logger      *logger.Logger
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService service.BillService, logger *logger.Logger) *BillHandler {
	return &BillHandler{
		billService: billService,
		logger:      logger,
	}
}

func billStatusFilter(c *gin.Context) *models.BillStatus {
	if raw := c.Query("status"); raw != "" {
		status := models.BillStatus(raw)
		return &status
	}
	return nil
}

// CreateBill handles POST /api/v1/bills
// @Summary Create a bill
// @Description Create an unpaid bill for a tenant and month (admin only)
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BillCreateRequest true "Bill data"
// @Success 201 {object} utils.APIResponse{data=models.Bill} "Bill created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 403 {object} utils.APIResponse "Admin privileges required"
// @Failure 409 {object} utils.APIResponse "Bill already exists for tenant and month"
// @Router /api/v1/bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req BillCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid bill payload")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	bill, err := h.billService.CreateBill(middleware.GetActor(c), service.BillInput{
		TenantID: req.TenantID,
		Month:    req.Month,
		Amount:   req.Amount,
	})
	if err != nil {
		h.logger.WithError(err).WithField("tenant_id", req.TenantID).Error("Failed to create bill")
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Bill created successfully", bill)
}

// ListBills handles GET /api/v1/bills
// @Summary List bills
// @Description List all bills, optionally filtered by status (admin only)
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (Unpaid or Paid)"
// @Success 200 {object} utils.APIResponse{data=[]models.Bill} "Bills retrieved"
// @Failure 403 {object} utils.APIResponse "Admin privileges required"
// @Router /api/v1/bills [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	bills, err := h.billService.ListBills(middleware.GetActor(c), billStatusFilter(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list bills")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Bills retrieved successfully", bills)
}

// UpdateBill handles PUT /api/v1/bills/:id
// @Summary Update a bill
// @Description Edit a bill; the submitted status and paid timestamp are authoritative (admin only)
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bill ID"
// @Param request body BillUpdateRequest true "Bill data"
// @Success 200 {object} utils.APIResponse{data=models.Bill} "Bill updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 409 {object} utils.APIResponse "Bill already exists for tenant and month"
// @Router /api/v1/bills/{id} [put]
func (h *BillHandler) UpdateBill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bill ID", err)
		return
	}

	var req BillUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid bill payload")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	bill, err := h.billService.UpdateBill(middleware.GetActor(c), uint(id), service.BillUpdateInput{
		Month:  req.Month,
		Amount: req.Amount,
		Status: models.BillStatus(req.Status),
		PaidAt: req.PaidAt,
	})
	if err != nil {
		h.logger.WithError(err).WithField("bill_id", id).Error("Failed to update bill")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Bill updated successfully", bill)
}

// DeleteBill handles DELETE /api/v1/bills/:id
// @Summary Delete a bill
// @Description Delete a bill (admin only)
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bill ID"
// @Success 200 {object} utils.APIResponse "Bill deleted"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Router /api/v1/bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bill ID", err)
		return
	}

	if err := h.billService.DeleteBill(middleware.GetActor(c), uint(id)); err != nil {
		h.logger.WithError(err).WithField("bill_id", id).Error("Failed to delete bill")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Bill deleted successfully", nil)
}

// GenerateMonthlyRequest represents the bulk monthly generation payload
type GenerateMonthlyRequest struct {
	Month string `json:"month" binding:"required" example:"January 2024"`
}

// GenerateMonthly handles POST /api/v1/bills/generate-monthly
// @Summary Generate monthly bills
// @Description Create one rent-amount bill per room-assigned tenant for the given month; existing bills are skipped (admin only)
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateMonthlyRequest true "Month label"
// @Success 200 {object} utils.APIResponse{data=service.MonthlyBillingSummary} "Generation summary"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 403 {object} utils.APIResponse "Admin privileges required"
// @Router /api/v1/bills/generate-monthly [post]
func (h *BillHandler) GenerateMonthly(c *gin.Context) {
	var req GenerateMonthlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid generation payload")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	summary, err := h.billService.GenerateMonthly(middleware.GetActor(c), req.Month)
	if err != nil {
		h.logger.WithError(err).WithField("month", req.Month).Error("Failed to generate monthly bills")
		utils.ErrorResponse(c, err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"month":   summary.Month,
		"created": summary.Created,
		"skipped": summary.Skipped,
	}).Info("Monthly bills generated")

	utils.SuccessResponse(c, "Monthly bills generated successfully", summary)
}

// ListOwnBills handles GET /api/v1/me/bills
// @Summary List own bills
// @Description List the calling tenant's bills, optionally filtered by status
// @Tags me
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (Unpaid or Paid)"
// @Success 200 {object} utils.APIResponse{data=[]models.Bill} "Bills retrieved"
// @Failure 403 {object} utils.APIResponse "Tenant profile required"
// @Router /api/v1/me/bills [get]
func (h *BillHandler) ListOwnBills(c *gin.Context) {
	bills, err := h.billService.ListOwnBills(middleware.GetActor(c), billStatusFilter(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list own bills")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Bills retrieved successfully", bills)
}

// PayBill handles POST /api/v1/me/bills/:id/pay
// @Summary Pay a bill
// @Description Mark one of the calling tenant's bills as paid. Paying an already-paid bill is a no-op.
// @Tags me
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bill ID"
// @Success 200 {object} utils.APIResponse{data=models.Bill} "Bill paid"
// @Failure 403 {object} utils.APIResponse "Not the bill owner"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Router /api/v1/me/bills/{id}/pay [post]
func (h *BillHandler) PayBill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bill ID", err)
		return
	}

	bill, err := h.billService.Pay(middleware.GetActor(c), uint(id))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Bill paid successfully", bill)
}
