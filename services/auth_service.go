package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sevahub-simple/dto"
	"github.com/sevahub-simple/models"
	"github.com/sevahub-simple/utils"
)

// ErrInvalidIdentityToken is returned when the identity provider rejects the
// presented token.
var ErrInvalidIdentityToken = errors.New("invalid identity token")

// AuthService bridges external identity tokens and server-side sessions.
type AuthService struct {
	users    UserStore
	sessions SessionStore
	verifier IdentityVerifier
	ttl      time.Duration
	logger   *zap.Logger
}

// NewAuthService creates a new auth service instance.
func NewAuthService(users UserStore, sessions SessionStore, verifier IdentityVerifier, ttl time.Duration, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		verifier: verifier,
		ttl:      ttl,
		logger:   logger,
	}
}

// LoginWithIDToken verifies the identity token, upserts the matching user
// record and opens a new session. The display name is split into first and
// last name at the first whitespace.
func (s *AuthService) LoginWithIDToken(ctx context.Context, token string) (models.User, models.Session, error) {
	claims, err := s.verifier.VerifyIDToken(ctx, token)
	if err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("%w: %v", ErrInvalidIdentityToken, err)
	}

	user := models.User{ID: claims.Subject}
	if claims.Email != "" {
		user.Email = &claims.Email
	}
	if first, last := utils.SplitDisplayName(claims.Name); first != "" {
		user.FirstName = &first
		if last != "" {
			user.LastName = &last
		}
	}
	if claims.Picture != "" {
		user.ProfileImageUrl = &claims.Picture
	}

	user, err = s.users.Upsert(ctx, user)
	if err != nil {
		s.logger.Error("upsert user on login", zap.String("subject", claims.Subject), zap.Error(err))
		return models.User{}, models.Session{}, fmt.Errorf("upsert user: %w", err)
	}

	session, err := s.openSession(ctx, user, claims)
	if err != nil {
		s.logger.Error("open session", zap.String("userId", user.ID), zap.Error(err))
		return models.User{}, models.Session{}, fmt.Errorf("open session: %w", err)
	}
	return user, session, nil
}

// openSession normalizes the identity claims into the canonical principal and
// persists it as a new session row.
func (s *AuthService) openSession(ctx context.Context, user models.User, claims *dto.IdentityClaims) (models.Session, error) {
	now := time.Now()
	principal := dto.AuthenticatedUser{
		ID:        user.ID,
		Email:     claims.Email,
		Name:      claims.Name,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	blob, err := json.Marshal(principal)
	if err != nil {
		return models.Session{}, fmt.Errorf("encode session principal: %w", err)
	}

	session := models.Session{
		SID:    utils.GenerateSessionID(),
		Sess:   blob,
		Expire: principal.ExpiresAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Authenticate resolves a session id into the canonical principal.
func (s *AuthService) Authenticate(ctx context.Context, sid string) (dto.AuthenticatedUser, error) {
	session, err := s.sessions.Find(ctx, sid)
	if err != nil {
		return dto.AuthenticatedUser{}, err
	}

	var principal dto.AuthenticatedUser
	if err := json.Unmarshal(session.Sess, &principal); err != nil {
		return dto.AuthenticatedUser{}, fmt.Errorf("decode session principal: %w", err)
	}
	return principal, nil
}

// CurrentUser retrieves the user row for the session subject.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Logout deletes the session row. Unknown session ids are ignored.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	return s.sessions.Delete(ctx, sid)
}
