package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roomly/utils"
)

const sessionTokenTTL = 24 * time.Hour

// SessionTokenHandler exchanges a verified Firebase ID token (checked by the
// FirebaseAuthMiddleware on this route) for a short-lived Roomly session JWT,
// so subsequent requests avoid a hosted-auth round trip.
func SessionTokenHandler(c *gin.Context) {
	userID := c.GetString("userID")
	email := c.GetString("userEmail")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	token, err := utils.GenerateToken(userID, email, sessionTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(sessionTokenTTL.Seconds())})
}
