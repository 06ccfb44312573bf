package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// RegisterRequest represents the tenant self-registration payload
type RegisterRequest struct {
	Username  string `json:"username" binding:"required" example:"john_doe"`
	Email     string `json:"email" binding:"required,email" example:"john.doe@example.com"`
	Password  string `json:"password" binding:"required,min=8" example:"s3cretpass"`
	FirstName string `json:"first_name" binding:"required" example:"John"`
	LastName  string `json:"last_name" binding:"required" example:"Doe"`
	Phone     string `json:"phone,omitempty" example:"+911234567890"`
	Address   string `json:"address,omitempty" example:"12 Main Street"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"john_doe"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/v1/auth/register
// @Summary Register a new tenant
// @Description Create a user account with an associated tenant profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} utils.APIResponse "Tenant registered"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Username already taken"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid registration payload")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	tenant, err := h.authService.Register(service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		h.logger.WithError(err).WithField("username", req.Username).Error("Registration failed")
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Registration successful", tenant)
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Verify credentials and issue a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=service.LoginResult} "Logged in"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid login payload")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Invalid username or password")
			return
		}
		h.logger.WithError(err).WithField("username", req.Username).Error("Login failed")
		utils.InternalServerErrorResponse(c, "Login failed", err)
		return
	}

	utils.SuccessResponse(c, "Login successful", result)
}
