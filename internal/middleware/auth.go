package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planner-api/internal/session"
)

// Auth guards routes behind a valid session cookie. On success it stores the
// resolved user id and the session token on the request context.
func Auth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		userID, ok := sessions.Get(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("sessionToken", token)
		c.Next()
	}
}
