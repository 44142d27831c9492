package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLCatalog = 10 * time.Minute // packages/add-ons change rarely
	TTLClients = 1 * time.Minute  // client rollup, recomputed from postings
	TTLBiolink = 5 * time.Minute  // public bio-link page
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixCatalog = "catalog:"
	PrefixClients = "clients:"
	PrefixBiolink = "biolink:"
)

// ErrCacheMiss is returned when a key is absent
var ErrCacheMiss = errors.New("cache miss")

// Service is the Redis cache service interface
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// Client rollup cache
	GetClients(ctx context.Context, dest interface{}) error
	SetClients(ctx context.Context, data interface{}) error
	InvalidateClients(ctx context.Context) error

	// Catalog cache
	GetCatalog(ctx context.Context, kind string, dest interface{}) error
	SetCatalog(ctx context.Context, kind string, data interface{}) error

	// Bio-link page cache
	GetBiolinkPage(ctx context.Context, slug string, dest interface{}) error
	SetBiolinkPage(ctx context.Context, slug string, data interface{}) error
	InvalidateBiolinkPage(ctx context.Context, slug string) error
}

type service struct {
	client *redis.Client
}

// NewService creates a cache Service backed by Redis
func NewService(client *redis.Client) Service {
	return &service{client: client}
}

func (s *service) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (s *service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *service) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *service) GetClients(ctx context.Context, dest interface{}) error {
	return s.Get(ctx, PrefixClients+"all", dest)
}

func (s *service) SetClients(ctx context.Context, data interface{}) error {
	return s.Set(ctx, PrefixClients+"all", data, TTLClients)
}

func (s *service) InvalidateClients(ctx context.Context) error {
	return s.Delete(ctx, PrefixClients+"all")
}

func (s *service) GetCatalog(ctx context.Context, kind string, dest interface{}) error {
	return s.Get(ctx, PrefixCatalog+kind, dest)
}

func (s *service) SetCatalog(ctx context.Context, kind string, data interface{}) error {
	return s.Set(ctx, PrefixCatalog+kind, data, TTLCatalog)
}

func (s *service) GetBiolinkPage(ctx context.Context, slug string, dest interface{}) error {
	return s.Get(ctx, biolinkKey(slug), dest)
}

func (s *service) SetBiolinkPage(ctx context.Context, slug string, data interface{}) error {
	return s.Set(ctx, biolinkKey(slug), data, TTLBiolink)
}

func (s *service) InvalidateBiolinkPage(ctx context.Context, slug string) error {
	return s.Delete(ctx, biolinkKey(slug))
}

func biolinkKey(slug string) string {
	return fmt.Sprintf("%spage:%s", PrefixBiolink, slug)
}
