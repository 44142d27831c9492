package domain

import (
	"time"
)

// PostingStatus is the lifecycle state of a queued job posting
type PostingStatus string

// Posting statuses. Draft postings are being prepared, queued postings are
// scheduled for publication, posted postings are live. Cancelled is terminal
// and has no kanban lane.
const (
	StatusDraft     PostingStatus = "draft"
	StatusQueued    PostingStatus = "queued"
	StatusPosted    PostingStatus = "posted"
	StatusCancelled PostingStatus = "cancelled"
)

// Valid reports whether s is a known posting status
func (s PostingStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusQueued, StatusPosted, StatusCancelled:
		return true
	}
	return false
}

// NextStatus returns the forward step in the happy path, or "" for terminal
// states. This drives the single-click quick-advance button only; arbitrary
// assignments (menu, lane drop) bypass it on purpose so mistakes can be
// corrected in any direction.
func NextStatus(s PostingStatus) PostingStatus {
	switch s {
	case StatusDraft:
		return StatusQueued
	case StatusQueued:
		return StatusPosted
	case StatusPosted:
		return ""
	case StatusCancelled:
		return ""
	}
	return ""
}

// DefaultScheduledTime is used when a posting has no explicit time-of-day
const DefaultScheduledTime = "10:00"

// Posting represents a queued job-posting order
// Table: postings
type Posting struct {
	ID             int64         `gorm:"column:id;primaryKey" json:"id"`
	CompanyName    string        `gorm:"column:company_name" json:"company_name"`
	WhatsAppNumber string        `gorm:"column:whatsapp_number;index" json:"whatsapp_number"`
	Gallery        []string      `gorm:"column:gallery;serializer:json" json:"gallery"`
	PosterURL      string        `gorm:"column:poster_url" json:"poster_url,omitempty"` // legacy single image
	ScheduledDate  string        `gorm:"column:scheduled_date;index" json:"scheduled_date"` // YYYY-MM-DD
	ScheduledTime  string        `gorm:"column:scheduled_time" json:"scheduled_time"`       // HH:MM[:SS]
	PackageID      int64         `gorm:"column:package_id" json:"package_id"`
	AddonIDs       []int64       `gorm:"column:addon_ids;serializer:json" json:"addon_ids"`
	TotalPrice     int64         `gorm:"column:total_price" json:"total_price"` // IDR snapshot at save time
	Status         PostingStatus `gorm:"column:status;default:draft" json:"status"`
	Notes          string        `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt      time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Posting model
func (Posting) TableName() string {
	return "postings"
}

// Posters returns the gallery images, falling back to the legacy single
// poster_url when the gallery is empty.
func (p *Posting) Posters() []string {
	if len(p.Gallery) > 0 {
		return p.Gallery
	}
	if p.PosterURL != "" {
		return []string{p.PosterURL}
	}
	return nil
}

// PostingResponse is the API response format for a posting
type PostingResponse struct {
	ID             int64         `json:"id"`
	CompanyName    string        `json:"company_name"`
	WhatsAppNumber string        `json:"whatsapp_number"`
	Gallery        []string      `json:"gallery"`
	PosterURL      string        `json:"poster_url,omitempty"`
	ScheduledDate  string        `json:"scheduled_date"`
	ScheduledTime  string        `json:"scheduled_time"`
	PackageID      int64         `json:"package_id"`
	AddonIDs       []int64       `json:"addon_ids"`
	TotalPrice     int64         `json:"total_price"`
	Status         PostingStatus `json:"status"`
	NextStatus     PostingStatus `json:"next_status,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// ToResponse converts Posting to PostingResponse
func (p *Posting) ToResponse() PostingResponse {
	return PostingResponse{
		ID:             p.ID,
		CompanyName:    p.CompanyName,
		WhatsAppNumber: p.WhatsAppNumber,
		Gallery:        p.Gallery,
		PosterURL:      p.PosterURL,
		ScheduledDate:  p.ScheduledDate,
		ScheduledTime:  p.ScheduledTime,
		PackageID:      p.PackageID,
		AddonIDs:       p.AddonIDs,
		TotalPrice:     p.TotalPrice,
		Status:         p.Status,
		NextStatus:     NextStatus(p.Status),
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// CreatePostingRequest is the request body for creating a posting.
// Status is not accepted: new postings always start as draft.
type CreatePostingRequest struct {
	CompanyName    string   `json:"company_name" binding:"required"`
	WhatsAppNumber string   `json:"whatsapp_number" binding:"required"`
	Gallery        []string `json:"gallery"`
	PosterURL      string   `json:"poster_url"`
	ScheduledDate  string   `json:"scheduled_date" binding:"required"`
	ScheduledTime  string   `json:"scheduled_time"`
	PackageID      int64    `json:"package_id" binding:"required"`
	AddonIDs       []int64  `json:"addon_ids"`
	Notes          string   `json:"notes"`
}

// UpdatePostingRequest is the request body for a partial posting update.
// Nil fields are left untouched.
type UpdatePostingRequest struct {
	CompanyName    *string   `json:"company_name"`
	WhatsAppNumber *string   `json:"whatsapp_number"`
	Gallery        *[]string `json:"gallery"`
	PosterURL      *string   `json:"poster_url"`
	ScheduledDate  *string   `json:"scheduled_date"`
	ScheduledTime  *string   `json:"scheduled_time"`
	PackageID      *int64    `json:"package_id"`
	AddonIDs       *[]int64  `json:"addon_ids"`
	Notes          *string   `json:"notes"`
}

// UpdateStatusRequest is the request body for a status-only transition
type UpdateStatusRequest struct {
	Status PostingStatus `json:"status" binding:"required"`
}
