package models

import (
	"time"
)

// Session is a server-side session row. The cookie only carries the opaque
// SID; the JSON blob holds the canonical authenticated principal.
type Session struct {
	SID    string    `json:"sid" gorm:"primaryKey;column:sid;size:64"`
	Sess   []byte    `json:"-" gorm:"column:sess;type:jsonb;not null"`
	Expire time.Time `json:"expire" gorm:"column:expire;not null;index"`
}
