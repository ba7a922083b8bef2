package repository

import (
	"errors"
	"sync"
	"time"

	"healthtrack-backend/internal/profile/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository stores health profiles, keyed one-per-user.
// FindByUserID returns (nil, nil) when the user has no profile yet.
type ProfileRepository interface {
	Upsert(profile *domain.HealthProfile) error
	FindByUserID(userID string) (*domain.HealthProfile, error)
}

// gormProfileRepository implements ProfileRepository on GORM
type gormProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &gormProfileRepository{db: db}
}

func (r *gormProfileRepository) Upsert(profile *domain.HealthProfile) error {
	existing, err := r.FindByUserID(profile.UserID)
	if err != nil {
		return err
	}

	if existing == nil {
		profile.ID = uuid.New().String()
		profile.CreatedAt = time.Now()
		profile.UpdatedAt = time.Now()
		return r.db.Create(profile).Error
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = time.Now()
	return r.db.Save(profile).Error
}

func (r *gormProfileRepository) FindByUserID(userID string) (*domain.HealthProfile, error) {
	var profile domain.HealthProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// memoryProfileRepository is the map-backed fallback.
type memoryProfileRepository struct {
	mu       sync.RWMutex
	byUserID map[string]*domain.HealthProfile
}

func NewMemoryProfileRepository() ProfileRepository {
	return &memoryProfileRepository{
		byUserID: make(map[string]*domain.HealthProfile),
	}
}

func (r *memoryProfileRepository) Upsert(profile *domain.HealthProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byUserID[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.ID = uuid.New().String()
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()

	clone := *profile
	r.byUserID[profile.UserID] = &clone
	return nil
}

func (r *memoryProfileRepository) FindByUserID(userID string) (*domain.HealthProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.byUserID[userID]
	if !ok {
		return nil, nil
	}
	clone := *profile
	return &clone, nil
}
