package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sevahub-simple/dto"
	"github.com/sevahub-simple/middleware"
)

type stubAuthenticator struct {
	sessions map[string]dto.AuthenticatedUser
}

func (s *stubAuthenticator) Authenticate(_ context.Context, sid string) (dto.AuthenticatedUser, error) {
	principal, ok := s.sessions[sid]
	if !ok {
		return dto.AuthenticatedUser{}, errors.New("session not found")
	}
	return principal, nil
}

func newProtectedRouter(auth middleware.SessionAuthenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.AuthMiddleware(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(middleware.ContextUserIDKey)})
	})
	return router
}

func TestAuthMiddlewareMissingCookie(t *testing.T) {
	router := newProtectedRouter(&stubAuthenticator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareUnknownSession(t *testing.T) {
	router := newProtectedRouter(&stubAuthenticator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "nope"})
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewarePassesPrincipal(t *testing.T) {
	auth := &stubAuthenticator{sessions: map[string]dto.AuthenticatedUser{
		"sid-1": {ID: "uid-1"},
	}}
	router := newProtectedRouter(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "sid-1"})
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "uid-1")
}
