package middleware

import (
	"net/http"
	"strings"

	"github.com/PhornSunnich/emall-cambodia/auth"
	"github.com/gin-gonic/gin"
)

func ValidateToken(c *gin.Context) {
	// Get the token from the header
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	// Accept both "Bearer <token>" and a bare token
	tokenString := header
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokenString = parts[1]
	}

	userID, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	// Set the user info in the context for further use
	c.Set("user_id", userID)

	c.Next()
}
