package models

import (
	"time"
)

// VerificationStatus classifies a seller profile's admin review state.
// Profiles start pending and move to verified or rejected; there is no
// transition back.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// SellerProfile represents a seller's business listing. The unique index on
// UserID enforces at most one profile per user at the database level, which
// makes concurrent registration attempts safe.
type SellerProfile struct {
	ID              string             `json:"id" gorm:"primaryKey;size:64"`
	UserID          string             `json:"userId" gorm:"size:128;not null;uniqueIndex"`
	BusinessName    string             `json:"businessName" gorm:"size:255;not null"`
	ServiceCategory string             `json:"serviceCategory" gorm:"size:100;not null"`
	Description     string             `json:"description" gorm:"type:text;not null"`
	ContactNumber   string             `json:"contactNumber" gorm:"size:20;not null"`
	Address         string             `json:"address" gorm:"type:text;not null"`
	ServiceArea     *string            `json:"serviceArea" gorm:"size:100;default:null"`
	PriceRange      *string            `json:"priceRange" gorm:"size:50;default:null"`
	ExperienceYears int                `json:"experienceYears" gorm:"not null"`
	IsVerified      VerificationStatus `json:"isVerified" gorm:"type:varchar(20);not null;default:'pending'"`
	Rating          Rating             `json:"rating" gorm:"not null;default:0"`
	ReviewCount     int                `json:"reviewCount" gorm:"not null;default:0"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
