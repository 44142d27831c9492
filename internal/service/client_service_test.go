package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
)

func TestClientList(t *testing.T) {
	repo := new(mockPostingRepo)
	repo.On("List").Return([]*domain.Posting{
		{ID: 1, WhatsAppNumber: "620001", CompanyName: "Warung A", TotalPrice: 50000, ScheduledDate: "2025-01-01"},
		{ID: 2, WhatsAppNumber: "620001", CompanyName: "Warung A", TotalPrice: 30000, ScheduledDate: "2025-02-01"},
		{ID: 3, WhatsAppNumber: "620002", CompanyName: "Toko B", TotalPrice: 20000, ScheduledDate: "2025-01-15"},
	}, nil)

	svc := NewClientService(repo, nil, nil)
	clients, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)
}

func TestClientDetail(t *testing.T) {
	repo := new(mockPostingRepo)
	repo.On("FindByWhatsAppNumber", "6281234567890").Return([]*domain.Posting{
		{ID: 1, WhatsAppNumber: "6281234567890", CompanyName: "Warung A", TotalPrice: 50000, ScheduledDate: "2025-01-01"},
		{ID: 2, WhatsAppNumber: "6281234567890", CompanyName: "Warung A", TotalPrice: 30000, ScheduledDate: "2025-02-01"},
	}, nil)

	svc := NewClientService(repo, nil, nil)

	// lookup input is normalized before the query
	detail, err := svc.Detail(context.Background(), "081234567890")
	require.NoError(t, err)
	assert.Equal(t, 2, detail.TotalPostings)
	assert.Equal(t, int64(80000), detail.TotalSpent)
	require.Len(t, detail.PostingHistory, 2)
	assert.Equal(t, int64(1), detail.PostingHistory[0].ID)
}

func TestClientDetailNotFound(t *testing.T) {
	repo := new(mockPostingRepo)
	repo.On("FindByWhatsAppNumber", "6280000").Return([]*domain.Posting{}, nil)

	svc := NewClientService(repo, nil, nil)
	_, err := svc.Detail(context.Background(), "6280000")
	assert.ErrorIs(t, err, common.ErrClientNotFound)
}
