package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Posting{}))
	return db
}

func newPosting(company, wa, date string) *domain.Posting {
	return &domain.Posting{
		CompanyName:    company,
		WhatsAppNumber: wa,
		ScheduledDate:  date,
		ScheduledTime:  domain.DefaultScheduledTime,
		PackageID:      1,
		TotalPrice:     50000,
	}
}

func TestCreateForcesDraftStatus(t *testing.T) {
	repo := NewPostingRepository(newTestDB(t))

	p := newPosting("Warung A", "6281111", "2025-03-01")
	p.Status = domain.StatusPosted // caller input must be ignored
	require.NoError(t, repo.Create(p))

	found, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, found.Status)
}

func TestListOrderedBySchedule(t *testing.T) {
	repo := NewPostingRepository(newTestDB(t))

	require.NoError(t, repo.Create(newPosting("B", "6282222", "2025-03-05")))
	require.NoError(t, repo.Create(newPosting("A", "6281111", "2025-03-01")))

	postings, err := repo.List()
	require.NoError(t, err)
	require.Len(t, postings, 2)
	assert.Equal(t, "A", postings[0].CompanyName)
	assert.Equal(t, "B", postings[1].CompanyName)
}

func TestUpdateStatus(t *testing.T) {
	repo := NewPostingRepository(newTestDB(t))

	p := newPosting("Warung A", "6281111", "2025-03-01")
	require.NoError(t, repo.Create(p))

	require.NoError(t, repo.UpdateStatus(p.ID, domain.StatusQueued))
	found, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQueued, found.Status)

	// backwards assignment is allowed at the storage layer
	require.NoError(t, repo.UpdateStatus(p.ID, domain.StatusDraft))

	err = repo.UpdateStatus(99999, domain.StatusQueued)
	assert.ErrorIs(t, err, common.ErrPostingNotFound)
}

func TestDeleteRemovesFromList(t *testing.T) {
	repo := NewPostingRepository(newTestDB(t))

	p := newPosting("Warung A", "6281111", "2025-03-01")
	require.NoError(t, repo.Create(p))
	require.NoError(t, repo.Delete(p.ID))

	postings, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, postings)

	_, err = repo.FindByID(p.ID)
	assert.ErrorIs(t, err, common.ErrPostingNotFound)

	assert.ErrorIs(t, repo.Delete(p.ID), common.ErrPostingNotFound)
}

func TestGalleryRoundTrip(t *testing.T) {
	repo := NewPostingRepository(newTestDB(t))

	p := newPosting("Warung A", "6281111", "2025-03-01")
	p.Gallery = []string{"a.jpg", "b.jpg"}
	p.AddonIDs = []int64{1, 3}
	require.NoError(t, repo.Create(p))

	found, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, found.Gallery)
	assert.Equal(t, []int64{1, 3}, found.AddonIDs)
}

func TestFindByWhatsAppNumber(t *testing.T) {
	repo := NewPostingRepository(newTestDB(t))

	require.NoError(t, repo.Create(newPosting("A", "6281111", "2025-03-05")))
	require.NoError(t, repo.Create(newPosting("A", "6281111", "2025-03-01")))
	require.NoError(t, repo.Create(newPosting("B", "6282222", "2025-03-02")))

	postings, err := repo.FindByWhatsAppNumber("6281111")
	require.NoError(t, err)
	require.Len(t, postings, 2)
	assert.Equal(t, "2025-03-01", postings[0].ScheduledDate)
}
