package usecase

import (
	authdomain "sellshot-backend/internal/auth/domain"
	authdto "sellshot-backend/internal/auth/dto"
)

// AuthUsecase defines the auth business operations. The sign-in here is a
// local simulation for the prototype; there is no real identity provider.
type AuthUsecase interface {
	DemoLogin(req *authdto.DemoLoginRequest) (*authdto.TokenResponse, error)
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)
}
