package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
)

// CatalogRepository defines read access to the package/add-on lookup tables.
// The catalog is owned by the backend and never mutated by this application.
type CatalogRepository interface {
	ListPackages() ([]*domain.Package, error)
	ListAddons() ([]*domain.Addon, error)
	FindPackageByID(id int64) (*domain.Package, error)
	FindAddonsByIDs(ids []int64) ([]domain.Addon, error)
}

// catalogRepository implements CatalogRepository with GORM
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// ListPackages retrieves all packages, cheapest first
func (r *catalogRepository) ListPackages() ([]*domain.Package, error) {
	var packages []*domain.Package

	err := r.db.
		Order("price ASC, id ASC").
		Find(&packages).Error

	if err != nil {
		return nil, err
	}

	return packages, nil
}

// ListAddons retrieves all add-ons, cheapest first
func (r *catalogRepository) ListAddons() ([]*domain.Addon, error) {
	var addons []*domain.Addon

	err := r.db.
		Order("price ASC, id ASC").
		Find(&addons).Error

	if err != nil {
		return nil, err
	}

	return addons, nil
}

// FindPackageByID finds a package by ID
func (r *catalogRepository) FindPackageByID(id int64) (*domain.Package, error) {
	var pkg domain.Package

	err := r.db.
		Where("id = ?", id).
		First(&pkg).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPackageNotFound
		}
		return nil, err
	}

	return &pkg, nil
}

// FindAddonsByIDs finds add-ons matching the given IDs
func (r *catalogRepository) FindAddonsByIDs(ids []int64) ([]domain.Addon, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var addons []domain.Addon
	err := r.db.
		Where("id IN ?", ids).
		Find(&addons).Error

	if err != nil {
		return nil, err
	}

	return addons, nil
}
