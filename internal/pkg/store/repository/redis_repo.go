package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	storemodels "credit-scoring/internal/pkg/store/models"

	"github.com/redis/go-redis/v9"
)

// RedisStoreAdapter memoizes scoring results. Entries expire after the
// configured TTL; the adapter never serves as authoritative storage.
type RedisStoreAdapter struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStoreAdapter(client *redis.Client, ttl time.Duration) *RedisStoreAdapter {
	return &RedisStoreAdapter{client: client, ttl: ttl}
}

func (a *RedisStoreAdapter) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return a.client.Set(ctx, key, value, expiration).Err()
}

func (a *RedisStoreAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	return a.client.Get(ctx, key).Bytes()
}

// SaveScore stores the result for a sanitized-record fingerprint.
func (a *RedisStoreAdapter) SaveScore(ctx context.Context, fingerprint string, entry storemodels.CachedScore) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cached score: %w", err)
	}
	return a.Set(ctx, storemodels.ScoreCacheKeyBuilder(fingerprint), data, a.ttl)
}

// GetScore fetches the memoized result for a fingerprint. A miss returns
// (nil, nil).
func (a *RedisStoreAdapter) GetScore(ctx context.Context, fingerprint string) (*storemodels.CachedScore, error) {
	data, err := a.Get(ctx, storemodels.ScoreCacheKeyBuilder(fingerprint))
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry storemodels.CachedScore
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode cached score: %w", err)
	}
	return &entry, nil
}
