package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"hostel-be-svc/internal/policy"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/utils"
)

const actorContextKey = "actor"

// AuthRequired verifies the bearer token and stores the resulting actor in
// the request context. It only authenticates: role and ownership checks
// live in the services, which receive the actor explicitly.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.UnauthorizedResponse(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			utils.UnauthorizedResponse(c, "Authorization header must be a bearer token")
			c.Abort()
			return
		}

		claims := &service.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			utils.UnauthorizedResponse(c, "Invalid or expired token")
			c.Abort()
			return
		}

		role := policy.RoleTenant
		if claims.IsAdmin {
			role = policy.RoleAdmin
		}

		c.Set(actorContextKey, policy.Actor{
			UserID:   claims.UserID,
			TenantID: claims.TenantID,
			Role:     role,
		})

		c.Next()
	}
}

// GetActor returns the authenticated actor stored by AuthRequired
func GetActor(c *gin.Context) policy.Actor {
	if value, exists := c.Get(actorContextKey); exists {
		if actor, ok := value.(policy.Actor); ok {
			return actor
		}
	}
	return policy.Actor{}
}
