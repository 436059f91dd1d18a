package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// userIDKey is the context key under which the authenticated user id is stored.
const userIDKey = "userID"

// TokenVerifier is the minimal interface the middleware depends on
type TokenVerifier interface {
	VerifyToken(raw string) (string, error)
}

// RequireAuth returns a Gin middleware that verifies Bearer tokens using the
// provided verifier and stores the authenticated user id on the context.
// Every failure mode (missing header, malformed header, bad signature,
// expired token) yields the same 401.
func RequireAuth(ver TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}
		// Expect 'Bearer <token>'
		var token string
		if n, _ := fmt.Sscanf(auth, "Bearer %s", &token); n != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		userID, err := ver.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
