package token

import (
	"errors"
	"time"

	authdomain "healthtrack-backend/internal/auth/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Kind distinguishes access tokens from refresh tokens. Verify always
// checks the kind, so a refresh token can never pass where an access
// token is required.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

var (
	ErrExpired   = errors.New("token expired")
	ErrMalformed = errors.New("token invalid")
	ErrWrongKind = errors.New("wrong token type")
)

// Claims are the signed contents of every token this service mints.
type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   authdomain.Role `json:"role"`
	Kind   Kind            `json:"kind"`
	jwt.RegisteredClaims
}

// Pair is an access/refresh token pair minted from the same user snapshot.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Service mints and verifies HS256 bearer tokens. The signing secret
// lives only here; it is never embedded in payloads or logged.
type Service struct {
	secret        []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

func NewService(secret, issuer string, accessExpiry, refreshExpiry time.Duration) *Service {
	return &Service{
		secret:        []byte(secret),
		issuer:        issuer,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
		now:           time.Now,
	}
}

// WithClock overrides the service clock. Used by tests to mint tokens
// that are already expired.
func (s *Service) WithClock(now func() time.Time) *Service {
	clone := *s
	clone.now = now
	return &clone
}

func (s *Service) IssueAccess(user *authdomain.User) (string, error) {
	return s.issue(user, KindAccess, s.accessExpiry)
}

func (s *Service) IssueRefresh(user *authdomain.User) (string, error) {
	return s.issue(user, KindRefresh, s.refreshExpiry)
}

// IssuePair mints both tokens from the same user snapshot so their
// claims agree.
func (s *Service) IssuePair(user *authdomain.User) (*Pair, error) {
	access, err := s.IssueAccess(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.IssueRefresh(user)
	if err != nil {
		return nil, err
	}
	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) issue(user *authdomain.User, kind Kind, expiry time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates signature, issuer and expiry, then checks that the
// token is of the wanted kind. Returns ErrExpired, ErrMalformed or
// ErrWrongKind accordingly.
func (s *Service) Verify(tokenString string, want Kind) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrMalformed
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}
	if !parsed.Valid {
		return nil, ErrMalformed
	}

	if claims.Kind != want {
		return nil, ErrWrongKind
	}

	return claims, nil
}
