package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/repository"
	pkgjwt "github.com/LostaMasta45/biolink-sub000/pkg/jwt"
)

// AuthService handles admin login and token refresh
type AuthService struct {
	repo       repository.AdminRepository
	jwtManager *pkgjwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(repo repository.AdminRepository, jwtManager *pkgjwt.Manager) *AuthService {
	return &AuthService{repo: repo, jwtManager: jwtManager}
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.repo.FindByUsername(req.Username)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateToken(user.Username, user.DisplayName)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, err
	}

	_ = s.repo.UpdateLoginTime(user.Username)

	return &domain.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Username:     user.Username,
		DisplayName:  user.DisplayName,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(req *domain.RefreshRequest) (*domain.LoginResponse, error) {
	claims, err := s.jwtManager.VerifyToken(req.RefreshToken)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repo.FindByUsername(claims.UserID)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	accessToken, err := s.jwtManager.GenerateToken(user.Username, user.DisplayName)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Username:     user.Username,
		DisplayName:  user.DisplayName,
	}, nil
}

// Me returns the profile for an authenticated username
func (s *AuthService) Me(username string) (*domain.AdminUser, error) {
	return s.repo.FindByUsername(username)
}

// HashPassword hashes a plaintext password for storage
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
