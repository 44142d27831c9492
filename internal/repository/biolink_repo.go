package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
)

// BiolinkRepository defines the interface for bio-link page/link data access
type BiolinkRepository interface {
	ListPages() ([]*domain.BiolinkPage, error)
	FindPageByID(id int64) (*domain.BiolinkPage, error)
	FindPageBySlug(slug string) (*domain.BiolinkPage, error)
	CreatePage(page *domain.BiolinkPage) error
	UpdatePage(page *domain.BiolinkPage) error
	DeletePage(id int64) error

	ListLinks(pageID int64, activeOnly bool) ([]domain.BiolinkLink, error)
	FindLinkByID(id int64) (*domain.BiolinkLink, error)
	CreateLink(link *domain.BiolinkLink) error
	UpdateLink(link *domain.BiolinkLink) error
	DeleteLink(id int64) error
	IncrementClicks(id int64) error
}

// biolinkRepository implements BiolinkRepository with GORM
type biolinkRepository struct {
	db *gorm.DB
}

// NewBiolinkRepository creates a new BiolinkRepository
func NewBiolinkRepository(db *gorm.DB) BiolinkRepository {
	return &biolinkRepository{db: db}
}

func (r *biolinkRepository) ListPages() ([]*domain.BiolinkPage, error) {
	var pages []*domain.BiolinkPage
	if err := r.db.Order("id ASC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *biolinkRepository) FindPageByID(id int64) (*domain.BiolinkPage, error) {
	var page domain.BiolinkPage
	err := r.db.Where("id = ?", id).First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

func (r *biolinkRepository) FindPageBySlug(slug string) (*domain.BiolinkPage, error) {
	var page domain.BiolinkPage
	err := r.db.Where("slug = ?", slug).First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

func (r *biolinkRepository) CreatePage(page *domain.BiolinkPage) error {
	return r.db.Create(page).Error
}

func (r *biolinkRepository) UpdatePage(page *domain.BiolinkPage) error {
	return r.db.Save(page).Error
}

// DeletePage removes a page and its links
func (r *biolinkRepository) DeletePage(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("page_id = ?", id).Delete(&domain.BiolinkLink{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.BiolinkPage{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrPageNotFound
		}
		return nil
	})
}

func (r *biolinkRepository) ListLinks(pageID int64, activeOnly bool) ([]domain.BiolinkLink, error) {
	query := r.db.Where("page_id = ?", pageID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var links []domain.BiolinkLink
	if err := query.Order("order_num ASC, id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *biolinkRepository) FindLinkByID(id int64) (*domain.BiolinkLink, error) {
	var link domain.BiolinkLink
	err := r.db.Where("id = ?", id).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *biolinkRepository) CreateLink(link *domain.BiolinkLink) error {
	return r.db.Create(link).Error
}

func (r *biolinkRepository) UpdateLink(link *domain.BiolinkLink) error {
	return r.db.Save(link).Error
}

func (r *biolinkRepository) DeleteLink(id int64) error {
	result := r.db.Delete(&domain.BiolinkLink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrLinkNotFound
	}
	return nil
}

// IncrementClicks bumps a link's click counter atomically
func (r *biolinkRepository) IncrementClicks(id int64) error {
	result := r.db.Model(&domain.BiolinkLink{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + 1"))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrLinkNotFound
	}
	return nil
}
