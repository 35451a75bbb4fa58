package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sevahub-simple/dto"
	"github.com/sevahub-simple/models"
)

// SellerService implements seller registration and listing queries.
type SellerService struct {
	profiles SellerProfileStore
	users    UserStore
	logger   *zap.Logger
}

// NewSellerService creates a new seller service instance.
func NewSellerService(profiles SellerProfileStore, users UserStore, logger *zap.Logger) *SellerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SellerService{profiles: profiles, users: users, logger: logger}
}

// RegisterSeller creates the caller's profile and promotes them to seller.
// The insert itself detects a duplicate profile, so two racing registrations
// for the same user leave exactly one row behind. Promotion is one-way:
// buyer to seller, never back.
func (s *SellerService) RegisterSeller(ctx context.Context, userID string, input dto.SellerProfileInput) (models.SellerProfile, error) {
	profile, err := s.profiles.Create(ctx, input.ToModel(userID))
	if err != nil {
		return models.SellerProfile{}, err
	}

	if err := s.users.UpdateRole(ctx, userID, models.RoleSeller); err != nil {
		s.logger.Error("promote user to seller", zap.String("userId", userID), zap.Error(err))
		return models.SellerProfile{}, fmt.Errorf("promote user to seller: %w", err)
	}

	s.logger.Info("seller profile created",
		zap.String("userId", userID),
		zap.String("profileId", profile.ID),
		zap.String("category", profile.ServiceCategory))
	return profile, nil
}

// MyProfile retrieves the caller's own profile.
func (s *SellerService) MyProfile(ctx context.Context, userID string) (models.SellerProfile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

// VerifiedListings returns every verified profile with its embedded user.
func (s *SellerService) VerifiedListings(ctx context.Context) ([]models.SellerProfile, error) {
	profiles, err := s.profiles.FindAllVerified(ctx)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []models.SellerProfile{}
	}
	return profiles, nil
}
