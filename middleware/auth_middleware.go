package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sevahub-simple/dto"
)

// SessionCookieName is the cookie carrying the opaque session id.
const SessionCookieName = "session_id"

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserIDKey    = "userId"
	ContextPrincipalKey = "principal"
)

// SessionAuthenticator resolves a session id into the canonical principal.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, sid string) (dto.AuthenticatedUser, error)
}

// AuthMiddleware rejects requests without a live session and stores the
// principal on the request context.
func AuthMiddleware(auth SessionAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookieName)
		if err != nil || sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		principal, err := auth.Authenticate(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, principal.ID)
		c.Set(ContextPrincipalKey, principal)
		c.Next()
	}
}
