package dto

import (
	"time"

	"github.com/sevahub-simple/models"
)

// FirebaseLoginRequest carries the bearer identity token issued by the
// identity provider.
type FirebaseLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// IdentityClaims is the verified subset of an external identity token.
type IdentityClaims struct {
	Subject   string
	Email     string
	Name      string
	Picture   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthenticatedUser is the canonical session principal. Identity claims are
// normalized into this shape once at login; every route consumes only this.
type AuthenticatedUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthResponse represents the response after a successful login
type AuthResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}
