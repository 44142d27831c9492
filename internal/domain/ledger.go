package domain

import "time"

// EntryType classifies a ledger entry
type EntryType string

// Ledger entry types
const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// Valid reports whether t is a known entry type
func (t EntryType) Valid() bool {
	return t == EntryIncome || t == EntryExpense
}

// LedgerEntry is one row in the agency's simple bookkeeping ledger
// Table: ledger_entries
type LedgerEntry struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	EntryType   EntryType `gorm:"column:entry_type;index" json:"entry_type"`
	Category    string    `gorm:"column:category" json:"category"`
	Amount      int64     `gorm:"column:amount" json:"amount"` // IDR
	Description string    `gorm:"column:description" json:"description,omitempty"`
	EntryDate   string    `gorm:"column:entry_date;index" json:"entry_date"` // YYYY-MM-DD
	InvoiceID   *int64    `gorm:"column:invoice_id" json:"invoice_id,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// CreateLedgerEntryRequest is the request body for a new ledger entry
type CreateLedgerEntryRequest struct {
	EntryType   EntryType `json:"entry_type" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Amount      int64     `json:"amount" binding:"required,gt=0"`
	Description string    `json:"description"`
	EntryDate   string    `json:"entry_date" binding:"required"`
}

// UpdateLedgerEntryRequest is the request body for editing a ledger entry
type UpdateLedgerEntryRequest struct {
	EntryType   *EntryType `json:"entry_type"`
	Category    *string    `json:"category"`
	Amount      *int64     `json:"amount"`
	Description *string    `json:"description"`
	EntryDate   *string    `json:"entry_date"`
}

// MonthSummary is the per-month rollup of the ledger
type MonthSummary struct {
	Month   string `json:"month"` // YYYY-MM
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Net     int64  `json:"net"`
}

// LedgerSummaryResponse is the full summary view
type LedgerSummaryResponse struct {
	Months       []MonthSummary `json:"months"`
	TotalIncome  int64          `json:"total_income"`
	TotalExpense int64          `json:"total_expense"`
	TotalNet     int64          `json:"total_net"`
}
