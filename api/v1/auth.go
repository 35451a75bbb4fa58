package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sevahub-simple/dto"
	"github.com/sevahub-simple/middleware"
	"github.com/sevahub-simple/services"
)

// AuthController handles the identity-token login flow and session endpoints.
type AuthController struct {
	auth         *services.AuthService
	cookieSecure bool
}

// NewAuthController creates a new auth controller instance
func NewAuthController(auth *services.AuthService, cookieSecure bool) *AuthController {
	return &AuthController{auth: auth, cookieSecure: cookieSecure}
}

// FirebaseLogin exchanges a Firebase ID token for a server-side session.
func (ctrl *AuthController) FirebaseLogin(c *gin.Context) {
	var req dto.FirebaseLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Token is required",
		})
		return
	}

	user, session, err := ctrl.auth.LoginWithIDToken(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidIdentityToken) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid identity token",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to sign in",
		})
		return
	}

	// Session cookie, HttpOnly so it is not accessible via JS
	c.SetCookie(
		middleware.SessionCookieName,
		session.SID,
		int(time.Until(session.Expire).Seconds()),
		"/",
		"",
		ctrl.cookieSecure,
		true,
	)

	c.JSON(http.StatusOK, dto.AuthResponse{Success: true, User: user})
}

// GetCurrentUser returns the authenticated caller's user row.
func (ctrl *AuthController) GetCurrentUser(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	user, err := ctrl.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch user",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
