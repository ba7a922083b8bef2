package repository

import (
	"strings"
	"sync"
	"time"

	authdomain "healthtrack-backend/internal/auth/domain"

	"github.com/google/uuid"
)

// memoryUserRepository is the map-backed fallback used when no database
// is configured. Also the store behind most tests.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*authdomain.User
	byEmail map[string]*authdomain.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]*authdomain.User),
		byEmail: make(map[string]*authdomain.User),
	}
}

func (r *memoryUserRepository) Create(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := r.byEmail[email]; exists {
		return authdomain.ErrDuplicateEmail
	}

	user.ID = uuid.New().String()
	user.Email = email
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	clone := *user
	r.byID[user.ID] = &clone
	r.byEmail[email] = &clone
	return nil
}

func (r *memoryUserRepository) FindByID(id string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *memoryUserRepository) FindByEmail(email string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *memoryUserRepository) Update(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[user.ID]
	if !ok {
		return authdomain.ErrUserNotFound
	}

	user.UpdatedAt = time.Now()
	clone := *user
	r.byID[user.ID] = &clone
	delete(r.byEmail, existing.Email)
	r.byEmail[clone.Email] = &clone
	return nil
}

// memoryDeviceTokenRepository mirrors the GORM device token store.
type memoryDeviceTokenRepository struct {
	mu      sync.RWMutex
	byToken map[string]*authdomain.DeviceToken
}

func NewMemoryDeviceTokenRepository() DeviceTokenRepository {
	return &memoryDeviceTokenRepository{
		byToken: make(map[string]*authdomain.DeviceToken),
	}
}

func (r *memoryDeviceTokenRepository) SaveToken(userID, token, deviceInfo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byToken[token]; ok {
		existing.UserID = userID
		existing.DeviceInfo = deviceInfo
		existing.UpdatedAt = time.Now()
		return nil
	}

	r.byToken[token] = &authdomain.DeviceToken{
		ID:         uuid.New().String(),
		UserID:     userID,
		Token:      token,
		DeviceInfo: deviceInfo,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	return nil
}

func (r *memoryDeviceTokenRepository) GetTokensByUserID(userID string) ([]authdomain.DeviceToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tokens []authdomain.DeviceToken
	for _, t := range r.byToken {
		if t.UserID == userID {
			tokens = append(tokens, *t)
		}
	}
	return tokens, nil
}

func (r *memoryDeviceTokenRepository) DeleteToken(userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byToken[token]; ok && existing.UserID == userID {
		delete(r.byToken, token)
	}
	return nil
}
