package middleware

import (
	"net/http"

	"roomly/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware validates the static admin API token configured via
// ADMIN_API_TOKEN. Admin routes are disabled when no token is configured.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		adminToken := config.AppConfig.AdminAPIToken
		if adminToken == "" || tokenString != adminToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
