package services

import (
	"context"

	"github.com/sevahub-simple/dto"
	"github.com/sevahub-simple/models"
)

// UserStore is the slice of user persistence the services depend on.
type UserStore interface {
	FindByID(ctx context.Context, id string) (models.User, error)
	Upsert(ctx context.Context, user models.User) (models.User, error)
	UpdateRole(ctx context.Context, id string, role models.Role) error
}

// SellerProfileStore is the slice of profile persistence the services depend on.
type SellerProfileStore interface {
	Create(ctx context.Context, profile models.SellerProfile) (models.SellerProfile, error)
	FindByUserID(ctx context.Context, userID string) (models.SellerProfile, error)
	FindAllVerified(ctx context.Context) ([]models.SellerProfile, error)
}

// SessionStore is the slice of session persistence the services depend on.
type SessionStore interface {
	Create(ctx context.Context, session models.Session) error
	Find(ctx context.Context, sid string) (models.Session, error)
	Delete(ctx context.Context, sid string) error
}

// IdentityVerifier validates an external identity token and returns its
// verified claims.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (*dto.IdentityClaims, error)
}
