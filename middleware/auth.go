package middleware

import (
	"net/http"
	"strings"

	"bistro-api/store"
	"bistro-api/token"

	"github.com/gin-gonic/gin"
)

const emailKey = "email"

// AuthRequired validates the bearer token and injects the caller's email
// into the context.
func AuthRequired(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(emailKey, claims.Email)
		c.Next()
	}
}

// AdminRequired looks up the caller's user record and requires the admin
// role. The role is read from the database on every request, never from
// the token, so a promotion or deletion takes effect immediately.
// Must run after AuthRequired.
func AdminRequired(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.GetByEmail(GetEmail(c))
		if err != nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetEmail extracts the authenticated caller's email from the context.
func GetEmail(c *gin.Context) string {
	val, _ := c.Get(emailKey)
	email, _ := val.(string)
	return email
}
