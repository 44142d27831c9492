package domain

import "time"

// AdminUser is a dashboard operator account
// Table: admin_users
type AdminUser struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id"`
	Username    string     `gorm:"column:username;uniqueIndex" json:"username"`
	Password    string     `gorm:"column:password" json:"-"` // bcrypt hash
	DisplayName string     `gorm:"column:display_name" json:"display_name"`
	LastLoginAt *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for AdminUser model
func (AdminUser) TableName() string {
	return "admin_users"
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token pair
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
}

// RefreshRequest is the request body for refreshing an access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
