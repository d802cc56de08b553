package middleware

import (
	"net/http"
	"strings"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/internal/tokenutil"
	"github.com/gin-gonic/gin"
)

func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "missing or malformed bearer token"})
			return
		}
		claims, err := tokenutil.ExtractClaims(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "invalid token"})
			return
		}
		c.Set("x-user-id", claims.ID)
		c.Set("x-user-name", claims.Name)
		c.Set("x-user-role", claims.Role)
		c.Next()
	}
}

// AdminOnly gates admin routes; it must run after JwtAuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("x-user-role") != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": "FORBIDDEN", "message": "admin role required"})
			return
		}
		c.Next()
	}
}
