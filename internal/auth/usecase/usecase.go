package usecase

import (
	authdomain "jobtrackr-backend/internal/auth/domain"
	authdto "jobtrackr-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication operations
type AuthUsecase interface {
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)

	UpdateProfile(userID, fullName string) (*authdomain.User, error)
	ChangePassword(userID, currentPassword, newPassword string) error

	RegisterFCMToken(userID, token, deviceInfo string) error
	UnregisterFCMToken(token string) error
}
