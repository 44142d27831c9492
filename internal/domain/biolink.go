package domain

import "time"

// BiolinkPage is the public landing page shown at /bio/:slug
// Table: biolink_pages
type BiolinkPage struct {
	ID             int64     `gorm:"column:id;primaryKey" json:"id"`
	Slug           string    `gorm:"column:slug;uniqueIndex" json:"slug"`
	Title          string    `gorm:"column:title" json:"title"`
	Bio            string    `gorm:"column:bio" json:"bio,omitempty"`
	AvatarURL      string    `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	WhatsAppNumber string    `gorm:"column:whatsapp_number" json:"whatsapp_number,omitempty"`
	IsActive       bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`

	// Loaded separately, not a GORM association
	Links []BiolinkLink `gorm:"-" json:"links,omitempty"`
}

// TableName specifies the table name for BiolinkPage model
func (BiolinkPage) TableName() string {
	return "biolink_pages"
}

// BiolinkLink is one button on a bio-link page
// Table: biolink_links
type BiolinkLink struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	PageID     int64     `gorm:"column:page_id;index" json:"page_id"`
	Label      string    `gorm:"column:label" json:"label"`
	URL        string    `gorm:"column:url" json:"url"`
	Icon       string    `gorm:"column:icon" json:"icon,omitempty"`
	OrderNum   int       `gorm:"column:order_num;default:0" json:"order_num"`
	IsActive   bool      `gorm:"column:is_active;default:true" json:"is_active"`
	ClickCount int64     `gorm:"column:click_count;default:0" json:"click_count"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for BiolinkLink model
func (BiolinkLink) TableName() string {
	return "biolink_links"
}

// CreateBiolinkPageRequest is the request body for creating a page
type CreateBiolinkPageRequest struct {
	Slug           string `json:"slug" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Bio            string `json:"bio"`
	AvatarURL      string `json:"avatar_url"`
	WhatsAppNumber string `json:"whatsapp_number"`
}

// UpdateBiolinkPageRequest is the request body for editing a page
type UpdateBiolinkPageRequest struct {
	Title          *string `json:"title"`
	Bio            *string `json:"bio"`
	AvatarURL      *string `json:"avatar_url"`
	WhatsAppNumber *string `json:"whatsapp_number"`
	IsActive       *bool   `json:"is_active"`
}

// CreateBiolinkLinkRequest is the request body for adding a link to a page
type CreateBiolinkLinkRequest struct {
	Label    string `json:"label" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	Icon     string `json:"icon"`
	OrderNum int    `json:"order_num"`
}

// UpdateBiolinkLinkRequest is the request body for editing a link
type UpdateBiolinkLinkRequest struct {
	Label    *string `json:"label"`
	URL      *string `json:"url"`
	Icon     *string `json:"icon"`
	OrderNum *int    `json:"order_num"`
	IsActive *bool   `json:"is_active"`
}
