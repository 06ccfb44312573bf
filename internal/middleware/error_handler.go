package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-be-svc/pkg/utils"
)

// ErrorHandler recovers from panics and converts them into 500 responses
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				utils.InternalServerErrorResponse(c, "Internal server error", fmt.Errorf("%v", r))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NoRouteHandler responds to requests for unknown paths
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.APIResponse{
			Success: false,
			Message: "Route not found",
		})
	}
}

// NoMethodHandler responds to requests with an unsupported method
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, utils.APIResponse{
			Success: false,
			Message: "Method not allowed",
		})
	}
}
