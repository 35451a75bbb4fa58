package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sevahub-simple/dto"
	"github.com/sevahub-simple/models"
	"github.com/sevahub-simple/repositories"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserStore) Upsert(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	if existing, ok := f.users[user.ID]; ok {
		existing.Email = user.Email
		existing.FirstName = user.FirstName
		existing.LastName = user.LastName
		existing.ProfileImageUrl = user.ProfileImageUrl
		existing.UpdatedAt = now
		f.users[user.ID] = existing
		return existing, nil
	}
	user.Role = models.RoleBuyer
	user.CreatedAt = now
	user.UpdatedAt = now
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStore) UpdateRole(_ context.Context, id string, role models.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	f.users[id] = user
	return nil
}

type fakeProfileStore struct {
	mu       sync.Mutex
	byUser   map[string]models.SellerProfile
	users    *fakeUserStore
	sequence int
}

func newFakeProfileStore(users *fakeUserStore) *fakeProfileStore {
	return &fakeProfileStore{byUser: map[string]models.SellerProfile{}, users: users}
}

func (f *fakeProfileStore) Create(_ context.Context, profile models.SellerProfile) (models.SellerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byUser[profile.UserID]; exists {
		return models.SellerProfile{}, repositories.ErrDuplicateSellerProfile
	}
	f.sequence++
	now := time.Now().Add(time.Duration(f.sequence) * time.Millisecond)
	profile.ID = uuid.NewString()
	profile.IsVerified = models.VerificationPending
	profile.CreatedAt = now
	profile.UpdatedAt = now
	f.byUser[profile.UserID] = profile
	return profile, nil
}

func (f *fakeProfileStore) FindByUserID(_ context.Context, userID string) (models.SellerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.byUser[userID]
	if !ok {
		return models.SellerProfile{}, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (f *fakeProfileStore) FindAllVerified(_ context.Context) ([]models.SellerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var verified []models.SellerProfile
	for _, profile := range f.byUser {
		if profile.IsVerified != models.VerificationVerified {
			continue
		}
		if f.users != nil {
			if user, ok := f.users.users[profile.UserID]; ok {
				owner := user
				profile.User = &owner
			}
		}
		verified = append(verified, profile)
	}
	sort.Slice(verified, func(i, j int) bool {
		if !verified[i].CreatedAt.Equal(verified[j].CreatedAt) {
			return verified[i].CreatedAt.Before(verified[j].CreatedAt)
		}
		return verified[i].ID < verified[j].ID
	})
	return verified, nil
}

func (f *fakeProfileStore) setVerified(userID string, status models.VerificationStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile := f.byUser[userID]
	profile.IsVerified = status
	f.byUser[userID] = profile
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]models.Session{}}
}

func (f *fakeSessionStore) Create(_ context.Context, session models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.SID] = session
	return nil
}

func (f *fakeSessionStore) Find(_ context.Context, sid string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sid]
	if !ok {
		return models.Session{}, gorm.ErrRecordNotFound
	}
	if time.Now().After(session.Expire) {
		delete(f.sessions, sid)
		return models.Session{}, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, sid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, sid)
	return nil
}

type fakeVerifier struct {
	tokens map[string]*dto.IdentityClaims
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, token string) (*dto.IdentityClaims, error) {
	claims, ok := f.tokens[token]
	if !ok {
		return nil, errors.New("token rejected by provider")
	}
	return claims, nil
}
