package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	pkgjwt "github.com/LostaMasta45/biolink-sub000/pkg/jwt"
)

// --- Mock AdminRepository ---

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) FindByUsername(username string) (*domain.AdminUser, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func (m *mockAdminRepo) Create(user *domain.AdminUser) error {
	return m.Called(user).Error(0)
}

func (m *mockAdminRepo) UpdateLoginTime(username string) error {
	return m.Called(username).Error(0)
}

// --- Tests ---

func newTestJWTManager() *pkgjwt.Manager {
	return pkgjwt.NewManager("test-secret-key-for-testing-only-32b!", 15, 1440)
}

func adminWithPassword(t *testing.T, plain string) *domain.AdminUser {
	t.Helper()
	hash, err := HashPassword(plain)
	require.NoError(t, err)
	return &domain.AdminUser{
		ID:          1,
		Username:    "admin",
		Password:    hash,
		DisplayName: "LostaMasta Admin",
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := new(mockAdminRepo)
	repo.On("FindByUsername", "admin").Return(adminWithPassword(t, "password123"), nil)
	repo.On("UpdateLoginTime", "admin").Return(nil)

	svc := NewAuthService(repo, newTestJWTManager())
	resp, err := svc.Login(&domain.LoginRequest{Username: "admin", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin", resp.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(mockAdminRepo)
	repo.On("FindByUsername", "admin").Return(adminWithPassword(t, "password123"), nil)

	svc := NewAuthService(repo, newTestJWTManager())
	_, err := svc.Login(&domain.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := new(mockAdminRepo)
	repo.On("FindByUsername", "ghost").Return(nil, common.ErrUserNotFound)

	svc := NewAuthService(repo, newTestJWTManager())
	_, err := svc.Login(&domain.LoginRequest{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	repo := new(mockAdminRepo)
	repo.On("FindByUsername", "admin").Return(adminWithPassword(t, "password123"), nil)
	repo.On("UpdateLoginTime", "admin").Return(nil)

	svc := NewAuthService(repo, newTestJWTManager())
	login, err := svc.Login(&domain.LoginRequest{Username: "admin", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&domain.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshInvalidToken(t *testing.T) {
	svc := NewAuthService(new(mockAdminRepo), newTestJWTManager())
	_, err := svc.Refresh(&domain.RefreshRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
