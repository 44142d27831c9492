package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
)

// PostingRepository defines the interface for posting data access
type PostingRepository interface {
	List() ([]*domain.Posting, error)
	FindByID(id int64) (*domain.Posting, error)
	FindByWhatsAppNumber(number string) ([]*domain.Posting, error)
	Create(posting *domain.Posting) error
	Update(posting *domain.Posting) error
	UpdateStatus(id int64, status domain.PostingStatus) error
	Delete(id int64) error
}

// postingRepository implements PostingRepository with GORM
type postingRepository struct {
	db *gorm.DB
}

// NewPostingRepository creates a new PostingRepository
func NewPostingRepository(db *gorm.DB) PostingRepository {
	return &postingRepository{db: db}
}

// List retrieves the full posting collection, soonest schedule first
func (r *postingRepository) List() ([]*domain.Posting, error) {
	var postings []*domain.Posting

	err := r.db.
		Order("scheduled_date ASC, scheduled_time ASC, id ASC").
		Find(&postings).Error

	if err != nil {
		return nil, err
	}

	return postings, nil
}

// FindByID finds a posting by ID
func (r *postingRepository) FindByID(id int64) (*domain.Posting, error) {
	var posting domain.Posting

	err := r.db.
		Where("id = ?", id).
		First(&posting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostingNotFound
		}
		return nil, err
	}

	return &posting, nil
}

// FindByWhatsAppNumber retrieves a client's postings in chronological order
func (r *postingRepository) FindByWhatsAppNumber(number string) ([]*domain.Posting, error) {
	var postings []*domain.Posting

	err := r.db.
		Where("whatsapp_number = ?", number).
		Order("scheduled_date ASC, id ASC").
		Find(&postings).Error

	if err != nil {
		return nil, err
	}

	return postings, nil
}

// Create inserts a new posting. Status is forced to draft regardless of
// caller input; that invariant belongs to the store, not its callers.
func (r *postingRepository) Create(posting *domain.Posting) error {
	posting.Status = domain.StatusDraft
	return r.db.Create(posting).Error
}

// Update saves a posting
func (r *postingRepository) Update(posting *domain.Posting) error {
	return r.db.Save(posting).Error
}

// UpdateStatus updates only the status column
func (r *postingRepository) UpdateStatus(id int64, status domain.PostingStatus) error {
	result := r.db.Model(&domain.Posting{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrPostingNotFound
	}
	return nil
}

// Delete hard-deletes a posting by ID
func (r *postingRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.Posting{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrPostingNotFound
	}
	return nil
}
