package service

import (
	"context"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/repository"
	pkgcache "github.com/LostaMasta45/biolink-sub000/pkg/cache"
)

// ClientService derives the per-client rollup from the posting collection.
// Clients are not stored anywhere: the rollup is recomputed on every load
// (with a short Redis cache in front) and keyed by WhatsApp number.
type ClientService struct {
	postingRepo repository.PostingRepository
	cache       pkgcache.Service // nil when Redis is unavailable
	tierRules   []domain.TierRule
}

// NewClientService creates a new ClientService. Empty rules fall back to the
// built-in tier thresholds.
func NewClientService(postingRepo repository.PostingRepository, cacheSvc pkgcache.Service, rules []domain.TierRule) *ClientService {
	if len(rules) == 0 {
		rules = domain.DefaultTierRules()
	}
	return &ClientService{
		postingRepo: postingRepo,
		cache:       cacheSvc,
		tierRules:   rules,
	}
}

// List returns the aggregated client rollup. The list view deliberately
// excludes posting history; Detail serves that per client.
func (s *ClientService) List(ctx context.Context) ([]*domain.AggregatedClient, error) {
	if s.cache != nil {
		var cached []*domain.AggregatedClient
		if err := s.cache.GetClients(ctx, &cached); err == nil {
			return cached, nil
		}
	}

	postings, err := s.postingRepo.List()
	if err != nil {
		return nil, err
	}

	clients := domain.AggregateClients(postings, s.tierRules)

	if s.cache != nil {
		_ = s.cache.SetClients(ctx, clients)
	}
	return clients, nil
}

// Detail returns one client's rollup plus the full posting history, fetched
// by a single-key lookup on the normalized WhatsApp number
func (s *ClientService) Detail(ctx context.Context, number string) (*domain.ClientDetail, error) {
	number = common.NormalizeWhatsAppNumber(number)

	postings, err := s.postingRepo.FindByWhatsAppNumber(number)
	if err != nil {
		return nil, err
	}
	if len(postings) == 0 {
		return nil, common.ErrClientNotFound
	}

	clients := domain.AggregateClients(postings, s.tierRules)
	detail := &domain.ClientDetail{AggregatedClient: *clients[0]}

	detail.PostingHistory = make([]domain.PostingResponse, len(postings))
	for i, p := range postings {
		detail.PostingHistory[i] = p.ToResponse()
	}
	return detail, nil
}
