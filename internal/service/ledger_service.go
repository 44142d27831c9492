package service

import (
	"sort"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/repository"
)

// LedgerService handles the agency's simple bookkeeping
type LedgerService struct {
	repo repository.LedgerRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(repo repository.LedgerRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

// List returns entries, optionally filtered by YYYY-MM month and type
func (s *LedgerService) List(month string, entryType domain.EntryType) ([]*domain.LedgerEntry, error) {
	if entryType != "" && !entryType.Valid() {
		return nil, common.ErrInvalidInput
	}
	return s.repo.List(month, entryType)
}

// Create records a new ledger entry
func (s *LedgerService) Create(req *domain.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	if !req.EntryType.Valid() {
		return nil, common.ErrInvalidInput
	}

	entry := &domain.LedgerEntry{
		EntryType:   req.EntryType,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		EntryDate:   req.EntryDate,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update applies a partial edit to a ledger entry
func (s *LedgerService) Update(id int64, req *domain.UpdateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	entry, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.EntryType != nil {
		if !req.EntryType.Valid() {
			return nil, common.ErrInvalidInput
		}
		entry.EntryType = *req.EntryType
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, common.ErrInvalidInput
		}
		entry.Amount = *req.Amount
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
	}

	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes a ledger entry
func (s *LedgerService) Delete(id int64) error {
	return s.repo.Delete(id)
}

// Summary rolls the ledger up into per-month income/expense/net plus overall
// totals, newest month first
func (s *LedgerService) Summary() (*domain.LedgerSummaryResponse, error) {
	entries, err := s.repo.List("", "")
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*domain.MonthSummary)
	summary := &domain.LedgerSummaryResponse{}

	for _, e := range entries {
		month := e.EntryDate
		if len(month) >= 7 {
			month = month[:7]
		}

		m, ok := byMonth[month]
		if !ok {
			m = &domain.MonthSummary{Month: month}
			byMonth[month] = m
		}

		switch e.EntryType {
		case domain.EntryIncome:
			m.Income += e.Amount
			summary.TotalIncome += e.Amount
		case domain.EntryExpense:
			m.Expense += e.Amount
			summary.TotalExpense += e.Amount
		}
	}

	months := make([]domain.MonthSummary, 0, len(byMonth))
	for _, m := range byMonth {
		m.Net = m.Income - m.Expense
		months = append(months, *m)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month > months[j].Month
	})

	summary.Months = months
	summary.TotalNet = summary.TotalIncome - summary.TotalExpense
	return summary, nil
}
