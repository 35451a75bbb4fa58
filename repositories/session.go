package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sevahub-simple/models"
)

// SessionRepository handles database operations for server-side sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository instance
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a new session row.
func (r *SessionRepository) Create(ctx context.Context, session models.Session) error {
	return r.db.WithContext(ctx).Create(&session).Error
}

// Find retrieves a live session. Expired rows are deleted on sight and
// reported as absent, so no background sweeper is needed.
func (r *SessionRepository) Find(ctx context.Context, sid string) (models.Session, error) {
	var session models.Session
	if err := r.db.WithContext(ctx).First(&session, "sid = ?", sid).Error; err != nil {
		return models.Session{}, err
	}
	if time.Now().After(session.Expire) {
		_ = r.db.WithContext(ctx).Delete(&models.Session{}, "sid = ?", sid).Error
		return models.Session{}, gorm.ErrRecordNotFound
	}
	return session, nil
}

// Delete removes a session row. Deleting an absent session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	return r.db.WithContext(ctx).Delete(&models.Session{}, "sid = ?", sid).Error
}
