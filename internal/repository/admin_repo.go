package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
)

// AdminRepository defines the interface for admin user data access
type AdminRepository interface {
	FindByUsername(username string) (*domain.AdminUser, error)
	Create(user *domain.AdminUser) error
	UpdateLoginTime(username string) error
}

// adminRepository implements AdminRepository with GORM
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// FindByUsername finds an admin user by username
func (r *adminRepository) FindByUsername(username string) (*domain.AdminUser, error) {
	var user domain.AdminUser

	err := r.db.
		Where("username = ?", username).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Create inserts a new admin user
func (r *adminRepository) Create(user *domain.AdminUser) error {
	return r.db.Create(user).Error
}

// UpdateLoginTime stamps the last successful login
func (r *adminRepository) UpdateLoginTime(username string) error {
	now := time.Now()
	return r.db.Model(&domain.AdminUser{}).
		Where("username = ?", username).
		Update("last_login_at", &now).Error
}
