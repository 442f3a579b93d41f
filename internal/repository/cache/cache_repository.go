package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
	"github.com/ecoexpedicoes/attractions-service/internal/domain/repository"
)

const (
	statsKey        = "attractions:stats"
	lookupKeyPrefix = "attractions:lookup:"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redisConn *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redisConn.Client(),
		logger: redisConn.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.Strings("keys", keys), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	return nil
}

func (r *cacheRepository) GetStats(ctx context.Context) (*domain.AttractionStats, error) {
	data, err := r.Get(ctx, statsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.AttractionStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.AttractionStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.Set(ctx, statsKey, data, ttl)
}

func (r *cacheRepository) GetLookup(ctx context.Context, name string) ([]string, error) {
	data, err := r.Get(ctx, lookupKeyPrefix+name)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		r.logger.Error("Failed to unmarshal lookup from cache", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("unmarshal lookup: %w", err)
	}

	return values, nil
}

func (r *cacheRepository) SetLookup(ctx context.Context, name string, values []string, ttl time.Duration) error {
	data, err := json.Marshal(values)
	if err != nil {
		r.logger.Error("Failed to marshal lookup", zap.String("name", name), zap.Error(err))
		return fmt.Errorf("marshal lookup: %w", err)
	}

	return r.Set(ctx, lookupKeyPrefix+name, data, ttl)
}

func (r *cacheRepository) InvalidateCatalog(ctx context.Context) error {
	return r.Delete(ctx,
		statsKey,
		lookupKeyPrefix+"categories",
		lookupKeyPrefix+"difficulties",
	)
}
