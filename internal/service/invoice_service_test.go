package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
)

// --- Mock InvoiceRepository ---

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) List(page, limit int) ([]*domain.Invoice, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Invoice), args.Get(1).(int64), args.Error(2)
}

func (m *mockInvoiceRepo) FindByID(id int64) (*domain.Invoice, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) CountByMonth(yearMonth string) (int64, error) {
	args := m.Called(yearMonth)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInvoiceRepo) Create(invoice *domain.Invoice) error {
	invoice.ID = 1
	return m.Called(invoice).Error(0)
}

func (m *mockInvoiceRepo) Update(invoice *domain.Invoice) error {
	return m.Called(invoice).Error(0)
}

func (m *mockInvoiceRepo) Delete(id int64) error {
	return m.Called(id).Error(0)
}

// --- Mock LedgerRepository ---

type mockLedgerRepo struct {
	mock.Mock
}

func (m *mockLedgerRepo) List(month string, entryType domain.EntryType) ([]*domain.LedgerEntry, error) {
	args := m.Called(month, entryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LedgerEntry), args.Error(1)
}

func (m *mockLedgerRepo) FindByID(id int64) (*domain.LedgerEntry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *mockLedgerRepo) Create(entry *domain.LedgerEntry) error {
	return m.Called(entry).Error(0)
}

func (m *mockLedgerRepo) Update(entry *domain.LedgerEntry) error {
	return m.Called(entry).Error(0)
}

func (m *mockLedgerRepo) Delete(id int64) error {
	return m.Called(id).Error(0)
}

// --- Tests ---

func TestCreateInvoiceComputesTotals(t *testing.T) {
	repo := new(mockInvoiceRepo)
	repo.On("CountByMonth", "2025-03").Return(int64(2), nil)
	repo.On("Create", mock.Anything).Return(nil)

	svc := NewInvoiceService(repo, nil, nil, nil)
	inv, err := svc.Create(&domain.CreateInvoiceRequest{
		CompanyName:    "Warung A",
		WhatsAppNumber: "081234",
		Items: []domain.InvoiceItem{
			{Description: "Paket Basic", Amount: 50000},
			{Description: "Add-on Highlight", Amount: 10000},
		},
		Discount:   5000,
		IssuedDate: "2025-03-10",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(60000), inv.Subtotal)
	assert.Equal(t, int64(55000), inv.Total)
	assert.Equal(t, "INV-202503-0003", inv.InvoiceNumber)
	assert.Equal(t, domain.InvoiceDraft, inv.Status)
	assert.Equal(t, "6281234", inv.WhatsAppNumber)
}

func TestInvoiceFromPostingSnapshotsCatalogPrices(t *testing.T) {
	postingRepo := new(mockPostingRepo)
	postingRepo.On("FindByID", int64(7)).Return(&domain.Posting{
		ID: 7, CompanyName: "Toko B", WhatsAppNumber: "628222",
		PackageID: 1, AddonIDs: []int64{1, 2}, ScheduledDate: "2025-03-05",
	}, nil)

	invoiceRepo := new(mockInvoiceRepo)
	invoiceRepo.On("CountByMonth", mock.Anything).Return(int64(0), nil)
	invoiceRepo.On("Create", mock.Anything).Return(nil)

	svc := NewInvoiceService(invoiceRepo, postingRepo, seededCatalog(), nil)
	inv, err := svc.FromPosting(7)

	require.NoError(t, err)
	require.Len(t, inv.Items, 3) // package + two add-ons
	assert.Equal(t, int64(65000), inv.Total)
	require.NotNil(t, inv.PostingID)
	assert.Equal(t, int64(7), *inv.PostingID)
}

func TestMarkPaidRecordsLedgerIncome(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepo)
	invoiceRepo.On("FindByID", int64(1)).Return(&domain.Invoice{
		ID: 1, InvoiceNumber: "INV-202503-0001", CompanyName: "Warung A",
		Total: 55000, Status: domain.InvoiceSent,
	}, nil)
	invoiceRepo.On("Update", mock.Anything).Return(nil)

	ledgerRepo := new(mockLedgerRepo)
	ledgerRepo.On("Create", mock.MatchedBy(func(e *domain.LedgerEntry) bool {
		return e.EntryType == domain.EntryIncome && e.Amount == 55000 && e.InvoiceID != nil
	})).Return(nil)

	svc := NewInvoiceService(invoiceRepo, nil, nil, ledgerRepo)
	inv, err := svc.SetStatus(1, domain.InvoicePaid)

	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, inv.Status)
	assert.NotNil(t, inv.PaidAt)
	ledgerRepo.AssertExpectations(t)
}

func TestMarkPaidTwiceDoesNotDoubleRecord(t *testing.T) {
	paid := &domain.Invoice{
		ID: 1, InvoiceNumber: "INV-202503-0001",
		Total: 55000, Status: domain.InvoicePaid,
	}
	invoiceRepo := new(mockInvoiceRepo)
	invoiceRepo.On("FindByID", int64(1)).Return(paid, nil)
	invoiceRepo.On("Update", mock.Anything).Return(nil)

	ledgerRepo := new(mockLedgerRepo)

	svc := NewInvoiceService(invoiceRepo, nil, nil, ledgerRepo)
	_, err := svc.SetStatus(1, domain.InvoicePaid)

	require.NoError(t, err)
	ledgerRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestInvoiceShare(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepo)
	invoiceRepo.On("FindByID", int64(1)).Return(&domain.Invoice{
		ID: 1, InvoiceNumber: "INV-202503-0001", CompanyName: "Warung A",
		WhatsAppNumber: "6281234567890",
		Items:          []domain.InvoiceItem{{Description: "Paket Basic", Amount: 50000}},
		Total:          50000,
	}, nil)

	svc := NewInvoiceService(invoiceRepo, nil, nil, nil)
	share, err := svc.Share(1)

	require.NoError(t, err)
	assert.Contains(t, share.Message, "INV-202503-0001")
	assert.Contains(t, share.Message, "Rp 50.000")
	assert.True(t, strings.HasPrefix(share.WhatsAppLink, "https://wa.me/6281234567890?text="))
}

func TestInvoiceSetStatusInvalid(t *testing.T) {
	svc := NewInvoiceService(new(mockInvoiceRepo), nil, nil, nil)
	_, err := svc.SetStatus(1, "void")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
