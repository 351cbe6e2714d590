package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fairway/models"
	"fairway/utils"
)

// JWTAuthMiddleware validates the bearer token and stores the staff identity
// in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		staffID, role, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("staffID", staffID)
		c.Set("staffRole", role)
		c.Next()
	}
}

// AdminOnlyMiddleware gates endpoints behind the admin role. Must run after
// JWTAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get("staffRole"); role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
