package repository

import (
	authdomain "healthtrack-backend/internal/auth/domain"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the credential store behind authentication. Lookups
// return (nil, nil) when no record exists; Create fails with
// domain.ErrDuplicateEmail on an email collision.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByID(id string) (*authdomain.User, error)
	FindByEmail(email string) (*authdomain.User, error)
	Update(user *authdomain.User) error
}

// DeviceTokenRepository stores push-notification device registrations.
type DeviceTokenRepository interface {
	SaveToken(userID, token, deviceInfo string) error
	GetTokensByUserID(userID string) ([]authdomain.DeviceToken, error)
	DeleteToken(userID, token string) error
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
