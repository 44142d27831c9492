package service

import (
	"fmt"
	"time"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/repository"
)

// InvoiceService handles invoice generation and lifecycle
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	postingRepo repository.PostingRepository
	catalogRepo repository.CatalogRepository
	ledgerRepo  repository.LedgerRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo repository.InvoiceRepository, postingRepo repository.PostingRepository, catalogRepo repository.CatalogRepository, ledgerRepo repository.LedgerRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		postingRepo: postingRepo,
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// List returns invoices with pagination
func (s *InvoiceService) List(page, limit int) ([]*domain.Invoice, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	invoices, total, err := s.invoiceRepo.List(page, limit)
	if err != nil {
		return nil, nil, err
	}
	return invoices, common.NewMeta(page, limit, total), nil
}

// Get returns one invoice by ID
func (s *InvoiceService) Get(id int64) (*domain.Invoice, error) {
	return s.invoiceRepo.FindByID(id)
}

// Create builds an invoice from explicit line items
func (s *InvoiceService) Create(req *domain.CreateInvoiceRequest) (*domain.Invoice, error) {
	issued := req.IssuedDate
	if issued == "" {
		issued = time.Now().Format("2006-01-02")
	}

	invoice := &domain.Invoice{
		CompanyName:    req.CompanyName,
		WhatsAppNumber: common.NormalizeWhatsAppNumber(req.WhatsAppNumber),
		Items:          req.Items,
		Discount:       req.Discount,
		Status:         domain.InvoiceDraft,
		IssuedDate:     issued,
		DueDate:        req.DueDate,
		Notes:          req.Notes,
	}
	invoice.ComputeTotals()

	number, err := s.nextNumber(issued)
	if err != nil {
		return nil, err
	}
	invoice.InvoiceNumber = number

	if err := s.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// FromPosting generates an invoice from a posting: the package and each
// selected add-on become line items at catalog prices current right now.
// Totals are snapshots from this point on; catalog edits do not follow.
func (s *InvoiceService) FromPosting(postingID int64) (*domain.Invoice, error) {
	posting, err := s.postingRepo.FindByID(postingID)
	if err != nil {
		return nil, err
	}

	pkg, err := s.catalogRepo.FindPackageByID(posting.PackageID)
	if err != nil {
		return nil, err
	}

	addons, err := s.catalogRepo.FindAddonsByIDs(posting.AddonIDs)
	if err != nil {
		return nil, err
	}

	items := []domain.InvoiceItem{
		{Description: "Paket " + pkg.Name, Amount: pkg.Price},
	}
	for _, a := range addons {
		items = append(items, domain.InvoiceItem{Description: "Add-on " + a.Name, Amount: a.Price})
	}

	issued := time.Now().Format("2006-01-02")
	invoice := &domain.Invoice{
		PostingID:      &posting.ID,
		CompanyName:    posting.CompanyName,
		WhatsAppNumber: posting.WhatsAppNumber,
		Items:          items,
		Status:         domain.InvoiceDraft,
		IssuedDate:     issued,
	}
	invoice.ComputeTotals()

	number, err := s.nextNumber(issued)
	if err != nil {
		return nil, err
	}
	invoice.InvoiceNumber = number

	if err := s.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// SetStatus moves an invoice to sent or paid. Marking an invoice paid
// records a matching income entry in the ledger.
func (s *InvoiceService) SetStatus(id int64, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if !status.Valid() {
		return nil, common.ErrInvalidInput
	}

	invoice, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	alreadyPaid := invoice.Status == domain.InvoicePaid
	invoice.Status = status
	if status == domain.InvoicePaid && invoice.PaidAt == nil {
		now := time.Now()
		invoice.PaidAt = &now
	}

	if err := s.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}

	if status == domain.InvoicePaid && !alreadyPaid {
		entry := &domain.LedgerEntry{
			EntryType:   domain.EntryIncome,
			Category:    "invoice",
			Amount:      invoice.Total,
			Description: fmt.Sprintf("Pembayaran %s (%s)", invoice.InvoiceNumber, invoice.CompanyName),
			EntryDate:   time.Now().Format("2006-01-02"),
			InvoiceID:   &invoice.ID,
		}
		if err := s.ledgerRepo.Create(entry); err != nil {
			// the invoice is already paid; surface the bookkeeping failure
			return invoice, err
		}
	}

	return invoice, nil
}

// Delete removes an invoice
func (s *InvoiceService) Delete(id int64) error {
	return s.invoiceRepo.Delete(id)
}

// Share builds the WhatsApp share text and deep link for an invoice
func (s *InvoiceService) Share(id int64) (*domain.InvoiceShareResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Invoice %s — %s\n", invoice.InvoiceNumber, invoice.CompanyName)
	for _, item := range invoice.Items {
		msg += fmt.Sprintf("• %s: %s\n", item.Description, common.FormatRupiah(item.Amount))
	}
	if invoice.Discount > 0 {
		msg += fmt.Sprintf("Diskon: -%s\n", common.FormatRupiah(invoice.Discount))
	}
	msg += fmt.Sprintf("Total: %s", common.FormatRupiah(invoice.Total))
	if invoice.DueDate != "" {
		msg += fmt.Sprintf("\nJatuh tempo: %s", invoice.DueDate)
	}

	return &domain.InvoiceShareResponse{
		Message:      msg,
		WhatsAppLink: common.WhatsAppLink(invoice.WhatsAppNumber, msg),
	}, nil
}

// nextNumber produces INV-YYYYMM-NNNN, sequential within the issue month
func (s *InvoiceService) nextNumber(issuedDate string) (string, error) {
	yearMonth := issuedDate
	if len(yearMonth) < 7 {
		yearMonth = time.Now().Format("2006-01")
	} else {
		yearMonth = yearMonth[:7] // YYYY-MM
	}

	count, err := s.invoiceRepo.CountByMonth(yearMonth)
	if err != nil {
		return "", err
	}

	compact := yearMonth[:4] + yearMonth[5:]
	return fmt.Sprintf("INV-%s-%04d", compact, count+1), nil
}
