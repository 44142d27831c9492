package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
)

// LedgerRepository defines the interface for ledger entry data access
type LedgerRepository interface {
	List(month string, entryType domain.EntryType) ([]*domain.LedgerEntry, error)
	FindByID(id int64) (*domain.LedgerEntry, error)
	Create(entry *domain.LedgerEntry) error
	Update(entry *domain.LedgerEntry) error
	Delete(id int64) error
}

// ledgerRepository implements LedgerRepository with GORM
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

// List retrieves ledger entries, optionally filtered by YYYY-MM month and
// entry type, newest entry date first
func (r *ledgerRepository) List(month string, entryType domain.EntryType) ([]*domain.LedgerEntry, error) {
	query := r.db.Model(&domain.LedgerEntry{})
	if month != "" {
		query = query.Where("entry_date LIKE ?", month+"%")
	}
	if entryType != "" {
		query = query.Where("entry_type = ?", entryType)
	}

	var entries []*domain.LedgerEntry
	err := query.
		Order("entry_date DESC, id DESC").
		Find(&entries).Error

	if err != nil {
		return nil, err
	}

	return entries, nil
}

// FindByID finds a ledger entry by ID
func (r *ledgerRepository) FindByID(id int64) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry

	err := r.db.
		Where("id = ?", id).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrEntryNotFound
		}
		return nil, err
	}

	return &entry, nil
}

// Create inserts a new ledger entry
func (r *ledgerRepository) Create(entry *domain.LedgerEntry) error {
	return r.db.Create(entry).Error
}

// Update saves a ledger entry
func (r *ledgerRepository) Update(entry *domain.LedgerEntry) error {
	return r.db.Save(entry).Error
}

// Delete removes a ledger entry by ID
func (r *ledgerRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.LedgerEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrEntryNotFound
	}
	return nil
}
