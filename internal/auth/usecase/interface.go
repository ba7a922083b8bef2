package usecase

import (
	authdomain "healthtrack-backend/internal/auth/domain"
	authdto "healthtrack-backend/internal/auth/dto"
)

// AuthUsecase is the application service behind the /auth endpoints.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Refresh(refreshToken string) (*authdto.RefreshResponse, error)
	CurrentUser(id string) (*authdomain.User, error)
}
