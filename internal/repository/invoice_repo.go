package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
)

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	List(page, limit int) ([]*domain.Invoice, int64, error)
	FindByID(id int64) (*domain.Invoice, error)
	CountByMonth(yearMonth string) (int64, error)
	Create(invoice *domain.Invoice) error
	Update(invoice *domain.Invoice) error
	Delete(id int64) error
}

// invoiceRepository implements InvoiceRepository with GORM
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// List retrieves invoices with pagination, newest first
func (r *invoiceRepository) List(page, limit int) ([]*domain.Invoice, int64, error) {
	var invoices []*domain.Invoice
	var total int64

	if err := r.db.Model(&domain.Invoice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&invoices).Error

	if err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

// FindByID finds an invoice by ID
func (r *invoiceRepository) FindByID(id int64) (*domain.Invoice, error) {
	var invoice domain.Invoice

	err := r.db.
		Where("id = ?", id).
		First(&invoice).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvoiceNotFound
		}
		return nil, err
	}

	return &invoice, nil
}

// CountByMonth counts invoices issued in a YYYY-MM month, used for numbering
func (r *invoiceRepository) CountByMonth(yearMonth string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Invoice{}).
		Where("issued_date LIKE ?", yearMonth+"%").
		Count(&count).Error
	return count, err
}

// Create inserts a new invoice
func (r *invoiceRepository) Create(invoice *domain.Invoice) error {
	return r.db.Create(invoice).Error
}

// Update saves an invoice
func (r *invoiceRepository) Update(invoice *domain.Invoice) error {
	return r.db.Save(invoice).Error
}

// Delete removes an invoice by ID
func (r *invoiceRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.Invoice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrInvoiceNotFound
	}
	return nil
}
