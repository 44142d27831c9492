package service

import (
	"context"
	"strings"
	"sync"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/repository"
	pkgcache "github.com/LostaMasta45/biolink-sub000/pkg/cache"
)

// PostingService owns the posting queue: CRUD against the repository, price
// snapshots, and the dashboard's optimistic collection state.
//
// Status transitions follow an explicit two-step protocol: the in-memory
// collection is mutated first so the board reflects the operator's intent
// immediately, then the repository call confirms it. When the call fails the
// whole collection is replaced with a fresh read — no partial rollback, one
// extra round trip, no drift.
type PostingService struct {
	repo     repository.PostingRepository
	catalog  repository.CatalogRepository
	notifier Notifier
	cache    pkgcache.Service // nil when Redis is unavailable

	mu       sync.RWMutex
	postings []*domain.Posting
	loaded   bool
}

// NewPostingService creates a new PostingService
func NewPostingService(repo repository.PostingRepository, catalog repository.CatalogRepository, notifier Notifier, cacheSvc pkgcache.Service) *PostingService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &PostingService{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
		cache:    cacheSvc,
	}
}

// List returns the current posting collection, loading it from the
// repository on first use
func (s *PostingService) List() ([]domain.PostingResponse, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		if err := s.Refresh(); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.PostingResponse, len(s.postings))
	for i, p := range s.postings {
		items[i] = p.ToResponse()
	}
	return items, nil
}

// Get returns a single posting by ID from the repository
func (s *PostingService) Get(id int64) (*domain.PostingResponse, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := p.ToResponse()
	return &resp, nil
}

// Refresh replaces the local collection with the authoritative server state
func (s *PostingService) Refresh() error {
	postings, err := s.repo.List()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.postings = postings
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Create validates input, snapshots the price, and inserts the posting.
// The repository forces status to draft regardless of caller intent.
func (s *PostingService) Create(req *domain.CreatePostingRequest) (*domain.PostingResponse, error) {
	if strings.TrimSpace(req.CompanyName) == "" {
		return nil, common.ErrInvalidInput
	}

	number := common.NormalizeWhatsAppNumber(req.WhatsAppNumber)
	if number == "" {
		return nil, common.ErrInvalidInput
	}

	total, err := s.priceFor(req.PackageID, req.AddonIDs)
	if err != nil {
		return nil, err
	}

	scheduledTime := req.ScheduledTime
	if scheduledTime == "" {
		scheduledTime = domain.DefaultScheduledTime
	}

	posting := &domain.Posting{
		CompanyName:    strings.TrimSpace(req.CompanyName),
		WhatsAppNumber: number,
		Gallery:        req.Gallery,
		PosterURL:      req.PosterURL,
		ScheduledDate:  req.ScheduledDate,
		ScheduledTime:  scheduledTime,
		PackageID:      req.PackageID,
		AddonIDs:       dedupeIDs(req.AddonIDs),
		TotalPrice:     total,
		Notes:          req.Notes,
	}

	if err := s.repo.Create(posting); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.loaded {
		s.postings = append(s.postings, posting)
	}
	s.mu.Unlock()

	s.invalidateClients()
	created := *posting
	go s.notifier.PostingCreated(&created)

	resp := posting.ToResponse()
	return &resp, nil
}

// Update applies a partial edit and re-snapshots the price from the current
// catalog. Historical postings keep their stored totals; only an explicit
// save refreshes the snapshot.
func (s *PostingService) Update(id int64, req *domain.UpdatePostingRequest) (*domain.PostingResponse, error) {
	posting, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		if strings.TrimSpace(*req.CompanyName) == "" {
			return nil, common.ErrInvalidInput
		}
		posting.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.WhatsAppNumber != nil {
		posting.WhatsAppNumber = common.NormalizeWhatsAppNumber(*req.WhatsAppNumber)
	}
	if req.Gallery != nil {
		posting.Gallery = *req.Gallery
	}
	if req.PosterURL != nil {
		posting.PosterURL = *req.PosterURL
	}
	if req.ScheduledDate != nil {
		posting.ScheduledDate = *req.ScheduledDate
	}
	if req.ScheduledTime != nil {
		posting.ScheduledTime = *req.ScheduledTime
	}
	if req.PackageID != nil {
		posting.PackageID = *req.PackageID
	}
	if req.AddonIDs != nil {
		posting.AddonIDs = dedupeIDs(*req.AddonIDs)
	}
	if req.Notes != nil {
		posting.Notes = *req.Notes
	}

	total, err := s.priceFor(posting.PackageID, posting.AddonIDs)
	if err != nil {
		return nil, err
	}
	posting.TotalPrice = total

	if err := s.repo.Update(posting); err != nil {
		// local state may be stale now; reconcile with the server
		_ = s.Refresh()
		return nil, err
	}

	s.replaceLocal(posting)
	s.invalidateClients()

	resp := posting.ToResponse()
	return &resp, nil
}

// SetStatus assigns any valid status to a posting. Assignments are
// deliberately unguarded (posted → draft is fine): the menu and the kanban
// lanes are correction tools, not a state machine.
func (s *PostingService) SetStatus(id int64, status domain.PostingStatus) (*domain.PostingResponse, error) {
	if !status.Valid() {
		return nil, common.ErrInvalidStatus
	}

	// step 1: optimistic local apply
	s.mu.Lock()
	var target *domain.Posting
	var previous domain.PostingStatus
	for _, p := range s.postings {
		if p.ID == id {
			target = p
			previous = p.Status
			p.Status = status
			break
		}
	}
	s.mu.Unlock()

	// step 2: confirm with the repository; on failure reload everything
	if err := s.repo.UpdateStatus(id, status); err != nil {
		_ = s.Refresh()
		return nil, err
	}

	if target == nil {
		// not in local state (collection never loaded); fetch for the response
		p, err := s.repo.FindByID(id)
		if err != nil {
			return nil, err
		}
		target = p
		previous = p.Status
		target.Status = status
	}

	s.invalidateClients()
	changed := *target
	go s.notifier.PostingStatusChanged(&changed, previous, status)

	resp := changed.ToResponse()
	return &resp, nil
}

// QuickAdvance moves a posting one step forward in the happy path
func (s *PostingService) QuickAdvance(id int64) (*domain.PostingResponse, error) {
	current, err := s.currentStatus(id)
	if err != nil {
		return nil, err
	}

	next := domain.NextStatus(current)
	if next == "" {
		return nil, common.ErrStatusTerminal
	}
	return s.SetStatus(id, next)
}

// Delete hard-deletes a posting; there is no undo
func (s *PostingService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.mu.Lock()
	for i, p := range s.postings {
		if p.ID == id {
			s.postings = append(s.postings[:i], s.postings[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.invalidateClients()
	return nil
}

func (s *PostingService) currentStatus(id int64) (domain.PostingStatus, error) {
	s.mu.RLock()
	for _, p := range s.postings {
		if p.ID == id {
			status := p.Status
			s.mu.RUnlock()
			return status, nil
		}
	}
	s.mu.RUnlock()

	p, err := s.repo.FindByID(id)
	if err != nil {
		return "", err
	}
	return p.Status, nil
}

// priceFor snapshots the total from the current catalog
func (s *PostingService) priceFor(packageID int64, addonIDs []int64) (int64, error) {
	pkg, err := s.catalog.FindPackageByID(packageID)
	if err != nil {
		return 0, err
	}

	addons, err := s.catalog.FindAddonsByIDs(addonIDs)
	if err != nil {
		return 0, err
	}

	return domain.ComputeTotal(pkg.Price, addons, addonIDs), nil
}

func (s *PostingService) replaceLocal(posting *domain.Posting) {
	s.mu.Lock()
	for i, p := range s.postings {
		if p.ID == posting.ID {
			s.postings[i] = posting
			break
		}
	}
	s.mu.Unlock()
}

func (s *PostingService) invalidateClients() {
	if s.cache == nil {
		return
	}
	_ = s.cache.InvalidateClients(context.Background())
}

func dedupeIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return ids
	}
	seen := make(map[int64]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
