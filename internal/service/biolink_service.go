package service

import (
	"context"
	"strings"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/repository"
	pkgcache "github.com/LostaMasta45/biolink-sub000/pkg/cache"
)

// BiolinkService handles bio-link pages: admin CRUD and the public view
type BiolinkService struct {
	repo  repository.BiolinkRepository
	cache pkgcache.Service // nil when Redis is unavailable
}

// NewBiolinkService creates a new BiolinkService
func NewBiolinkService(repo repository.BiolinkRepository, cacheSvc pkgcache.Service) *BiolinkService {
	return &BiolinkService{repo: repo, cache: cacheSvc}
}

// PublicPage returns an active page with its active links, cached briefly
func (s *BiolinkService) PublicPage(ctx context.Context, slug string) (*domain.BiolinkPage, error) {
	if s.cache != nil {
		var cached domain.BiolinkPage
		if err := s.cache.GetBiolinkPage(ctx, slug, &cached); err == nil {
			return &cached, nil
		}
	}

	page, err := s.repo.FindPageBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !page.IsActive {
		return nil, common.ErrPageNotFound
	}

	links, err := s.repo.ListLinks(page.ID, true)
	if err != nil {
		return nil, err
	}
	page.Links = links

	if s.cache != nil {
		_ = s.cache.SetBiolinkPage(ctx, slug, page)
	}
	return page, nil
}

// TrackClick bumps a link's click counter and returns its target URL
func (s *BiolinkService) TrackClick(linkID int64) (string, error) {
	link, err := s.repo.FindLinkByID(linkID)
	if err != nil {
		return "", err
	}

	if err := s.repo.IncrementClicks(linkID); err != nil {
		return "", err
	}
	return link.URL, nil
}

// ListPages returns all pages with their links for the admin view
func (s *BiolinkService) ListPages() ([]*domain.BiolinkPage, error) {
	pages, err := s.repo.ListPages()
	if err != nil {
		return nil, err
	}

	for _, p := range pages {
		links, err := s.repo.ListLinks(p.ID, false)
		if err != nil {
			return nil, err
		}
		p.Links = links
	}
	return pages, nil
}

// CreatePage creates a bio-link page
func (s *BiolinkService) CreatePage(ctx context.Context, req *domain.CreateBiolinkPageRequest) (*domain.BiolinkPage, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" {
		return nil, common.ErrInvalidInput
	}

	page := &domain.BiolinkPage{
		Slug:           slug,
		Title:          req.Title,
		Bio:            req.Bio,
		AvatarURL:      req.AvatarURL,
		WhatsAppNumber: common.NormalizeWhatsAppNumber(req.WhatsAppNumber),
		IsActive:       true,
	}
	if err := s.repo.CreatePage(page); err != nil {
		return nil, err
	}
	return page, nil
}

// UpdatePage applies a partial edit to a page
func (s *BiolinkService) UpdatePage(ctx context.Context, id int64, req *domain.UpdateBiolinkPageRequest) (*domain.BiolinkPage, error) {
	page, err := s.repo.FindPageByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Bio != nil {
		page.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		page.AvatarURL = *req.AvatarURL
	}
	if req.WhatsAppNumber != nil {
		page.WhatsAppNumber = common.NormalizeWhatsAppNumber(*req.WhatsAppNumber)
	}
	if req.IsActive != nil {
		page.IsActive = *req.IsActive
	}

	if err := s.repo.UpdatePage(page); err != nil {
		return nil, err
	}
	s.invalidate(ctx, page.Slug)
	return page, nil
}

// DeletePage removes a page and all its links
func (s *BiolinkService) DeletePage(ctx context.Context, id int64) error {
	page, err := s.repo.FindPageByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.DeletePage(id); err != nil {
		return err
	}
	s.invalidate(ctx, page.Slug)
	return nil
}

// CreateLink adds a link to a page
func (s *BiolinkService) CreateLink(ctx context.Context, pageID int64, req *domain.CreateBiolinkLinkRequest) (*domain.BiolinkLink, error) {
	page, err := s.repo.FindPageByID(pageID)
	if err != nil {
		return nil, err
	}

	link := &domain.BiolinkLink{
		PageID:   page.ID,
		Label:    req.Label,
		URL:      req.URL,
		Icon:     req.Icon,
		OrderNum: req.OrderNum,
		IsActive: true,
	}
	if err := s.repo.CreateLink(link); err != nil {
		return nil, err
	}
	s.invalidate(ctx, page.Slug)
	return link, nil
}

// UpdateLink applies a partial edit to a link
func (s *BiolinkService) UpdateLink(ctx context.Context, id int64, req *domain.UpdateBiolinkLinkRequest) (*domain.BiolinkLink, error) {
	link, err := s.repo.FindLinkByID(id)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		link.Label = *req.Label
	}
	if req.URL != nil {
		link.URL = *req.URL
	}
	if req.Icon != nil {
		link.Icon = *req.Icon
	}
	if req.OrderNum != nil {
		link.OrderNum = *req.OrderNum
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateLink(link); err != nil {
		return nil, err
	}

	if page, err := s.repo.FindPageByID(link.PageID); err == nil {
		s.invalidate(ctx, page.Slug)
	}
	return link, nil
}

// DeleteLink removes a link
func (s *BiolinkService) DeleteLink(ctx context.Context, id int64) error {
	link, err := s.repo.FindLinkByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteLink(id); err != nil {
		return err
	}
	if page, err := s.repo.FindPageByID(link.PageID); err == nil {
		s.invalidate(ctx, page.Slug)
	}
	return nil
}

func (s *BiolinkService) invalidate(ctx context.Context, slug string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.InvalidateBiolinkPage(ctx, slug)
}
