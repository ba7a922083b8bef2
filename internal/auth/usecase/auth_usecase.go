package usecase

import (
	"strings"

	authdomain "healthtrack-backend/internal/auth/domain"
	authdto "healthtrack-backend/internal/auth/dto"
	"healthtrack-backend/internal/auth/repository"
	"healthtrack-backend/internal/auth/token"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	email := strings.ToLower(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrDuplicateEmail
	}

	hash, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		Role:         authdomain.RoleUser,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.tokenResponse(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// Same error for unknown email and wrong password
	if user == nil {
		return nil, authdomain.ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, authdomain.ErrInvalidCredentials
	}

	return u.tokenResponse(user)
}

// Refresh mints a fresh access token from a valid refresh token. The
// user is re-read from the store so revoked accounts stop refreshing.
func (u *authUsecase) Refresh(refreshToken string) (*authdto.RefreshResponse, error) {
	claims, err := u.tokens.Verify(refreshToken, token.KindRefresh)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	access, err := u.tokens.IssueAccess(user)
	if err != nil {
		return nil, err
	}

	return &authdto.RefreshResponse{AccessToken: access}, nil
}

func (u *authUsecase) CurrentUser(id string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) tokenResponse(user *authdomain.User) (*authdto.TokenResponse, error) {
	pair, err := u.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}
