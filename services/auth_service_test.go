package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sevahub-simple/dto"
	"github.com/sevahub-simple/models"
	"github.com/sevahub-simple/services"
)

const sessionTTL = 7 * 24 * time.Hour

func newAuthService(tokens map[string]*dto.IdentityClaims) (*services.AuthService, *fakeUserStore, *fakeSessionStore) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	verifier := &fakeVerifier{tokens: tokens}
	return services.NewAuthService(users, sessions, verifier, sessionTTL, nil), users, sessions
}

func ashaClaims() *dto.IdentityClaims {
	return &dto.IdentityClaims{
		Subject: "uid-1",
		Email:   "asha@example.com",
		Name:    "Asha Rao Kumar",
		Picture: "https://cdn.example.com/asha.png",
	}
}

func TestLoginWithIDTokenCreatesUser(t *testing.T) {
	svc, users, _ := newAuthService(map[string]*dto.IdentityClaims{"good": ashaClaims()})

	user, session, err := svc.LoginWithIDToken(context.Background(), "good")
	require.NoError(t, err)

	require.Equal(t, "uid-1", user.ID)
	require.Equal(t, models.RoleBuyer, user.Role)
	require.NotNil(t, user.Email)
	require.Equal(t, "asha@example.com", *user.Email)
	require.NotNil(t, user.FirstName)
	require.Equal(t, "Asha", *user.FirstName)
	require.NotNil(t, user.LastName)
	require.Equal(t, "Rao Kumar", *user.LastName)
	require.NotNil(t, user.ProfileImageUrl)

	require.NotEmpty(t, session.SID)
	require.WithinDuration(t, time.Now().Add(sessionTTL), session.Expire, time.Minute)

	principal, err := svc.Authenticate(context.Background(), session.SID)
	require.NoError(t, err)
	require.Equal(t, "uid-1", principal.ID)
	require.Equal(t, "asha@example.com", principal.Email)

	stored, err := users.FindByID(context.Background(), "uid-1")
	require.NoError(t, err)
	require.Equal(t, models.RoleBuyer, stored.Role)
}

func TestLoginWithIDTokenInvalidToken(t *testing.T) {
	svc, _, _ := newAuthService(map[string]*dto.IdentityClaims{})

	_, _, err := svc.LoginWithIDToken(context.Background(), "bogus")
	require.ErrorIs(t, err, services.ErrInvalidIdentityToken)
}

func TestLoginTwiceKeepsSingleRow(t *testing.T) {
	svc, users, _ := newAuthService(map[string]*dto.IdentityClaims{"good": ashaClaims()})

	first, _, err := svc.LoginWithIDToken(context.Background(), "good")
	require.NoError(t, err)
	second, _, err := svc.LoginWithIDToken(context.Background(), "good")
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.False(t, second.UpdatedAt.Before(first.UpdatedAt))
	require.Len(t, users.users, 1)
}

func TestLoginPreservesSellerRole(t *testing.T) {
	svc, users, _ := newAuthService(map[string]*dto.IdentityClaims{"good": ashaClaims()})

	_, _, err := svc.LoginWithIDToken(context.Background(), "good")
	require.NoError(t, err)
	require.NoError(t, users.UpdateRole(context.Background(), "uid-1", models.RoleSeller))

	user, _, err := svc.LoginWithIDToken(context.Background(), "good")
	require.NoError(t, err)
	require.Equal(t, models.RoleSeller, user.Role)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	svc, _, sessions := newAuthService(nil)

	require.NoError(t, sessions.Create(context.Background(), models.Session{
		SID:    "stale",
		Sess:   []byte(`{"id":"uid-1"}`),
		Expire: time.Now().Add(-time.Minute),
	}))

	_, err := svc.Authenticate(context.Background(), "stale")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _, _ := newAuthService(map[string]*dto.IdentityClaims{"good": ashaClaims()})

	_, session, err := svc.LoginWithIDToken(context.Background(), "good")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.SID))
	_, err = svc.Authenticate(context.Background(), session.SID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
