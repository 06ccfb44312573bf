package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/middleware"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// RoomRequest represents the room create/update payload
type RoomRequest struct {
	RoomNumber string  `json:"room_number" binding:"required" example:"101"`
	Capacity   int     `json:"capacity" binding:"required,min=1" example:"4"`
	Rent       float64 `json:"rent" binding:"min=0" example:"5000"`
}

// RoomHandler handles room HTTP requests
type RoomHandler struct {
	roomService service.RoomService
	logger      *logger.Logger
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService service.RoomService, logger *logger.Logger) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		logger:      logger,
	}
}

// CreateRoom handles POST /api/v1/rooms
// @Summary Create a room
// @Description Create a new room (admin only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RoomRequest true "Room data"
// @Success 201 {object} utils.APIResponse{data=models.Room} "Room created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 403 {object} utils.APIResponse "Admin privileges required"
// @Failure 409 {object} utils.APIResponse "Room number already exists"
// @Router /api/v1/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid room payload")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	room, err := h.roomService.CreateRoom(middleware.GetActor(c), service.RoomInput{
		RoomNumber: req.RoomNumber,
		Capacity:   req.Capacity,
		Rent:       req.Rent,
	})
	if err != nil {
		h.logger.WithError(err).WithField("room_number", req.RoomNumber).Error("Failed to create room")
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Room created successfully", room)
}

// ListRooms handles GET /api/v1/rooms
// @Summary List rooms
// @Description List all rooms with their derived occupant counts (admin only)
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]response.RoomOccupancy} "Rooms retrieved"
// @Failure 403 {object} utils.APIResponse "Admin privileges required"
// @Router /api/v1/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomService.ListRooms(middleware.GetActor(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list rooms")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Rooms retrieved successfully", rooms)
}

// GetRoom handles GET /api/v1/rooms/:id
// @Summary Get a room
// @Description Get a single room by ID (admin only)
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} utils.APIResponse{data=models.Room} "Room retrieved"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Router /api/v1/rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID", err)
		return
	}

	room, err := h.roomService.GetRoom(middleware.GetActor(c), uint(id))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Room retrieved successfully", room)
}

// UpdateRoom handles PUT /api/v1/rooms/:id
// @Summary Update a room
// @Description Update an existing room (admin only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body RoomRequest true "Room data"
// @Success 200 {object} utils.APIResponse{data=models.Room} "Room updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Failure 409 {object} utils.APIResponse "Room number already exists"
// @Router /api/v1/rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID", err)
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid room payload")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	room, err := h.roomService.UpdateRoom(middleware.GetActor(c), uint(id), service.RoomInput{
		RoomNumber: req.RoomNumber,
		Capacity:   req.Capacity,
		Rent:       req.Rent,
	})
	if err != nil {
		h.logger.WithError(err).WithField("room_id", id).Error("Failed to update room")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Room updated successfully", room)
}

// DeleteRoom handles DELETE /api/v1/rooms/:id
// @Summary Delete a room
// @Description Delete a room; assigned tenants become unassigned (admin only)
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} utils.APIResponse "Room deleted"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Router /api/v1/rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID", err)
		return
	}

	if err := h.roomService.DeleteRoom(middleware.GetActor(c), uint(id)); err != nil {
		h.logger.WithError(err).WithField("room_id", id).Error("Failed to delete room")
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Room deleted successfully", nil)
}
