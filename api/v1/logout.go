package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sevahub-simple/middleware"
)

// Logout deletes the caller's session row and clears the cookie.
func (ctrl *AuthController) Logout(c *gin.Context) {
	if sid, err := c.Cookie(middleware.SessionCookieName); err == nil && sid != "" {
		_ = ctrl.auth.Logout(c.Request.Context(), sid)
	}

	// Clear the cookie by setting max-age to -1 (expired)
	c.SetCookie(
		middleware.SessionCookieName,
		"",
		-1,
		"/",
		"",
		ctrl.cookieSecure,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out successfully",
	})
}
