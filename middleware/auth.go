package middleware

import (
	"net/http"
	"strings"

	"confcentral/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and stores the caller's user
// ID and email on the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		userID, email, err := utils.ExtractUserFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		c.Set("userID", userID)
		c.Set("email", email)
		c.Next()
	}
}

// CurrentUser returns the authenticated user ID and email from the context.
func CurrentUser(c *gin.Context) (userID, email string) {
	userID = c.GetString("userID")
	email = c.GetString("email")
	return userID, email
}
