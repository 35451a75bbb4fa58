package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sevahub-simple/models"
)

// ErrDuplicateSellerProfile is returned when a user already owns a profile.
var ErrDuplicateSellerProfile = errors.New("seller profile already exists for user")

// SellerProfileRepository handles database operations for seller profiles
type SellerProfileRepository struct {
	db *gorm.DB
}

// NewSellerProfileRepository creates a new seller profile repository instance
func NewSellerProfileRepository(db *gorm.DB) *SellerProfileRepository {
	return &SellerProfileRepository{db: db}
}

// Create inserts a new profile. The insert is atomic against the unique index
// on user_id: when another profile already holds the user, no row is written
// and ErrDuplicateSellerProfile is returned instead. There is deliberately no
// check-then-insert window here.
func (r *SellerProfileRepository) Create(ctx context.Context, profile models.SellerProfile) (models.SellerProfile, error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.IsVerified == "" {
		profile.IsVerified = models.VerificationPending
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&profile)
	if result.Error != nil {
		return models.SellerProfile{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SellerProfile{}, ErrDuplicateSellerProfile
	}
	return profile, nil
}

// FindByUserID retrieves the profile owned by the given user.
func (r *SellerProfileRepository) FindByUserID(ctx context.Context, userID string) (models.SellerProfile, error) {
	var profile models.SellerProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	return profile, err
}

// FindAllVerified retrieves every verified profile left-joined with its owning
// user. Ordering is by creation time then id so listings are deterministic.
// A profile whose user row is missing still appears, without the embedded user.
func (r *SellerProfileRepository) FindAllVerified(ctx context.Context) ([]models.SellerProfile, error) {
	var profiles []models.SellerProfile
	err := r.db.WithContext(ctx).
		Joins("User").
		Where("seller_profiles.is_verified = ?", models.VerificationVerified).
		Order("seller_profiles.created_at ASC, seller_profiles.id ASC").
		Find(&profiles).Error
	return profiles, err
}

// UpdateVerificationStatus moves a profile to a new verification state. This
// is the path used by the administrative review process, which lives outside
// this service. Returns gorm.ErrRecordNotFound when the profile does not exist.
func (r *SellerProfileRepository) UpdateVerificationStatus(ctx context.Context, id string, status models.VerificationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.SellerProfile{}).
		Where("id = ?", id).
		Update("is_verified", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
