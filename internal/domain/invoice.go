package domain

import "time"

// InvoiceStatus is the lifecycle state of an invoice
type InvoiceStatus string

// Invoice statuses
const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

// Valid reports whether s is a known invoice status
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid:
		return true
	}
	return false
}

// InvoiceItem is one line on an invoice. Amounts are snapshots taken at
// generation time; catalog price changes never alter issued invoices.
type InvoiceItem struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"` // IDR
}

// Invoice represents a client invoice
// Table: invoices
type Invoice struct {
	ID             int64         `gorm:"column:id;primaryKey" json:"id"`
	InvoiceNumber  string        `gorm:"column:invoice_number;uniqueIndex" json:"invoice_number"`
	PostingID      *int64        `gorm:"column:posting_id" json:"posting_id,omitempty"`
	CompanyName    string        `gorm:"column:company_name" json:"company_name"`
	WhatsAppNumber string        `gorm:"column:whatsapp_number;index" json:"whatsapp_number"`
	Items          []InvoiceItem `gorm:"column:items;serializer:json" json:"items"`
	Subtotal       int64         `gorm:"column:subtotal" json:"subtotal"`
	Discount       int64         `gorm:"column:discount" json:"discount"`
	Total          int64         `gorm:"column:total" json:"total"`
	Status         InvoiceStatus `gorm:"column:status;default:draft" json:"status"`
	IssuedDate     string        `gorm:"column:issued_date" json:"issued_date"` // YYYY-MM-DD
	DueDate        string        `gorm:"column:due_date" json:"due_date,omitempty"`
	PaidAt         *time.Time    `gorm:"column:paid_at" json:"paid_at,omitempty"`
	Notes          string        `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt      time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// ComputeTotals recalculates subtotal and total from the line items and
// discount. Called once before save; the stored values are snapshots.
func (inv *Invoice) ComputeTotals() {
	var subtotal int64
	for _, item := range inv.Items {
		subtotal += item.Amount
	}
	inv.Subtotal = subtotal
	inv.Total = subtotal - inv.Discount
	if inv.Total < 0 {
		inv.Total = 0
	}
}

// CreateInvoiceRequest is the request body for creating an invoice manually
type CreateInvoiceRequest struct {
	CompanyName    string        `json:"company_name" binding:"required"`
	WhatsAppNumber string        `json:"whatsapp_number" binding:"required"`
	Items          []InvoiceItem `json:"items" binding:"required,min=1"`
	Discount       int64         `json:"discount"`
	IssuedDate     string        `json:"issued_date"`
	DueDate        string        `json:"due_date"`
	Notes          string        `json:"notes"`
}

// UpdateInvoiceStatusRequest moves an invoice to sent or paid
type UpdateInvoiceStatusRequest struct {
	Status InvoiceStatus `json:"status" binding:"required"`
}

// InvoiceShareResponse is the WhatsApp share payload for an invoice
type InvoiceShareResponse struct {
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link"`
}
