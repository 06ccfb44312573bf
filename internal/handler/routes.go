package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hostel-be-svc/internal/middleware"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
)

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	roomService service.RoomService,
	tenantService service.TenantService,
	billService service.BillService,
	complaintService service.ComplaintService,
	dashboardService service.DashboardService,
	jwtSecret string,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	roomHandler := NewRoomHandler(roomService, logger)
	tenantHandler := NewTenantHandler(tenantService, logger)
	billHandler := NewBillHandler(billService, logger)
	complaintHandler := NewComplaintHandler(complaintService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Public auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Everything below requires a valid token
		authed := v1.Group("")
		authed.Use(middleware.AuthRequired(jwtSecret))
		{
			// Room routes
			rooms := authed.Group("/rooms")
			{
				rooms.POST("", roomHandler.CreateRoom)
				rooms.GET("", roomHandler.ListRooms)
				rooms.GET("/:id", roomHandler.GetRoom)
				rooms.PUT("/:id", roomHandler.UpdateRoom)
				rooms.DELETE("/:id", roomHandler.DeleteRoom)
			}

			// Tenant routes
			tenants := authed.Group("/tenants")
			{
				tenants.GET("", tenantHandler.ListTenants)
				tenants.GET("/:id", tenantHandler.GetTenant)
				tenants.PUT("/:id/room", tenantHandler.AssignRoom)
				tenants.DELETE("/:id", tenantHandler.DeleteTenant)
			}

			// Bill routes
			bills := authed.Group("/bills")
			{
				bills.POST("", billHandler.CreateBill)
				bills.GET("", billHandler.ListBills)
				bills.PUT("/:id", billHandler.UpdateBill)
				bills.DELETE("/:id", billHandler.DeleteBill)
				bills.POST("/generate-monthly", billHandler.GenerateMonthly)
			}

			// Complaint routes
			complaints := authed.Group("/complaints")
			{
				complaints.GET("", complaintHandler.ListComplaints)
				complaints.PUT("/:id/status", complaintHandler.UpdateComplaintStatus)
			}

			// Dashboard routes
			dashboard := authed.Group("/dashboard")
			{
				dashboard.GET("/statistics", dashboardHandler.GetStatistics)
			}

			// Tenant self-service routes
			me := authed.Group("/me")
			{
				me.GET("/dashboard", dashboardHandler.GetOwnDashboard)
				me.GET("/room", tenantHandler.GetOwnRoom)
				me.GET("/bills", billHandler.ListOwnBills)
				me.POST("/bills/:id/pay", billHandler.PayBill)
				me.GET("/complaints", complaintHandler.ListOwnComplaints)
				me.POST("/complaints", complaintHandler.CreateComplaint)
			}
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Hostel Backend Service",
	})
}
