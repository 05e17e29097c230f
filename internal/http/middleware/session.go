package middleware

import (
	"net/http"

	"ledger_api/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key holding the caller's session token.
const SessionKey = "session_id"

// Session rejects requests that carry no session cookie and stores the
// token in the context for handlers. The token is passed through unchanged;
// presence is the only check.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(service.SessionCookieName)
		if err != nil || token == "" {
			GuardRejections.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
			return
		}

		c.Set(SessionKey, token)
		c.Next()
	}
}
