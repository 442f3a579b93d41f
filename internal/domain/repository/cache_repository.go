package repository

import (
	"context"
	"time"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
)

// CacheRepository is a byte-level cache with typed helpers for the
// payloads the service actually caches. A nil result with a nil error is a
// cache miss.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// GetStats reads the cached statistics payload.
	GetStats(ctx context.Context) (*domain.AttractionStats, error)

	// SetStats caches the statistics payload with a TTL.
	SetStats(ctx context.Context, stats *domain.AttractionStats, ttl time.Duration) error

	// GetLookup reads a cached enumeration (categories or difficulties).
	GetLookup(ctx context.Context, name string) ([]string, error)

	// SetLookup caches an enumeration with a TTL.
	SetLookup(ctx context.Context, name string, values []string, ttl time.Duration) error

	// InvalidateCatalog drops every cached catalog-derived payload. Called
	// after any catalog write.
	InvalidateCatalog(ctx context.Context) error
}
