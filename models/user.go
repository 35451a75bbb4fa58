package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// User represents a marketplace account. The ID is the subject of the
// identity token that first created the account, so it is an opaque
// string rather than a database-generated uuid.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey;size:128"`
	Email           *string   `json:"email" gorm:"uniqueIndex;default:null"`
	FirstName       *string   `json:"firstName" gorm:"default:null"`
	LastName        *string   `json:"lastName" gorm:"default:null"`
	ProfileImageUrl *string   `json:"profileImageUrl" gorm:"default:null"`
	Role            Role      `json:"role" gorm:"type:varchar(20);not null;default:'buyer'"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
