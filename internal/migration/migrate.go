package migration

import (
	"os"

	"gorm.io/gorm"

	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/service"
	"github.com/LostaMasta45/biolink-sub000/pkg/logger"
)

// Run executes AutoMigrate for all tables and seeds default data if empty.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Package{},
		&domain.Addon{},
		&domain.Posting{},
		&domain.Invoice{},
		&domain.LedgerEntry{},
		&domain.BiolinkPage{},
		&domain.BiolinkLink{},
		&domain.AdminUser{},
	); err != nil {
		return err
	}

	if err := seedCatalog(db); err != nil {
		return err
	}
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedBiolinkPage(db)
}

// seedCatalog inserts the default packages and add-ons when the catalog is empty
func seedCatalog(db *gorm.DB) error {
	var count int64
	db.Model(&domain.Package{}).Count(&count)
	if count == 0 {
		packages := []domain.Package{
			{ID: 1, Name: "Basic", Price: 35000, Description: "1x feed post"},
			{ID: 2, Name: "Standard", Price: 50000, Description: "1x feed post + 1x story", IsPopular: true},
			{ID: 3, Name: "Premium", Price: 85000, Description: "2x feed post + 2x story + pinned 24h"},
		}
		if err := db.Create(&packages).Error; err != nil {
			return err
		}
	}

	db.Model(&domain.Addon{}).Count(&count)
	if count == 0 {
		addons := []domain.Addon{
			{ID: 1, Name: "Story tambahan", Price: 10000},
			{ID: 2, Name: "Repost sore", Price: 5000},
			{ID: 3, Name: "Highlight 7 hari", Price: 15000},
		}
		if err := db.Create(&addons).Error; err != nil {
			return err
		}
	}

	return nil
}

// seedAdmin creates the initial admin account when no users exist.
// The password comes from ADMIN_PASSWORD, falling back to a dev default.
func seedAdmin(db *gorm.DB) error {
	var count int64
	db.Model(&domain.AdminUser{}).Count(&count)
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		logger.GetLogger().Warn().Msg("ADMIN_PASSWORD not set, seeding admin with default password")
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}

	admin := domain.AdminUser{
		Username:    "admin",
		Password:    hash,
		DisplayName: "Admin",
	}
	return db.Create(&admin).Error
}

// seedBiolinkPage creates the default public page when none exists
func seedBiolinkPage(db *gorm.DB) error {
	var count int64
	db.Model(&domain.BiolinkPage{}).Count(&count)
	if count > 0 {
		return nil
	}

	page := domain.BiolinkPage{
		Slug:     "lostamasta",
		Title:    "LostaMasta",
		Bio:      "Info loker harian. DM untuk pasang iklan.",
		IsActive: true,
	}
	if err := db.Create(&page).Error; err != nil {
		return err
	}

	links := []domain.BiolinkLink{
		{PageID: page.ID, Label: "Pasang Iklan Loker", URL: "https://wa.me/6281234567890", Icon: "whatsapp", OrderNum: 1, IsActive: true},
		{PageID: page.ID, Label: "Katalog Harga", URL: "/catalog", Icon: "tag", OrderNum: 2, IsActive: true},
	}
	return db.Create(&links).Error
}
