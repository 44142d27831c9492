package domain

import "time"

// Package represents a paid posting package from the catalog
// Table: packages
type Package struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Price       int64     `gorm:"column:price" json:"price"` // IDR
	Description string    `gorm:"column:description" json:"description,omitempty"`
	IsPopular   bool      `gorm:"column:is_popular" json:"is_popular"` // display hint only
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Package model
func (Package) TableName() string {
	return "packages"
}

// Addon represents an optional add-on from the catalog
// Table: addons
type Addon struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Price     int64     `gorm:"column:price" json:"price"` // IDR
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Addon model
func (Addon) TableName() string {
	return "addons"
}

// ComputeTotal calculates a posting's price from the chosen package and the
// selected add-ons: packagePrice + sum of selected add-on prices. The result
// is snapshotted into Posting.TotalPrice at save time and never re-derived,
// so later catalog price changes leave historical records untouched.
func ComputeTotal(packagePrice int64, addons []Addon, selectedIDs []int64) int64 {
	selected := make(map[int64]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	total := packagePrice
	for _, a := range addons {
		if selected[a.ID] {
			total += a.Price
		}
	}
	return total
}
