package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	storemodels "credit-scoring/internal/pkg/store/models"
)

func TestNewRedisStoreAdapter(t *testing.T) {
	db, mock := redismock.NewClientMock()

	adapter := NewRedisStoreAdapter(db, 5*time.Minute)

	assert.NotNil(t, adapter)
	assert.Equal(t, db, adapter.client)
	assert.Equal(t, 5*time.Minute, adapter.ttl)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreAdapter_Set(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()
		key := "test-key"
		value := "test-value"
		expiration := 5 * time.Minute

		mock.ExpectSet(key, value, expiration).SetVal("OK")

		err := adapter.Set(ctx, key, value, expiration)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()
		key := "test-key"
		value := "test-value"
		expiration := 5 * time.Minute

		mock.ExpectSet(key, value, expiration).SetErr(redis.Nil)

		err := adapter.Set(ctx, key, value, expiration)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_SaveScore(t *testing.T) {
	entry := storemodels.CachedScore{
		Probability: 0.413,
		Tier:        "MEDIUM",
		Advisory:    "medium risk — additional verification recommended.",
	}
	data, _ := json.Marshal(entry)

	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, 5*time.Minute)
		ctx := context.Background()

		mock.ExpectSet(storemodels.ScoreCacheKeyBuilder("fp-1"), data, 5*time.Minute).SetVal("OK")

		err := adapter.SaveScore(ctx, "fp-1", entry)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, 5*time.Minute)
		ctx := context.Background()

		mock.ExpectSet(storemodels.ScoreCacheKeyBuilder("fp-1"), data, 5*time.Minute).SetErr(redis.ErrClosed)

		err := adapter.SaveScore(ctx, "fp-1", entry)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_GetScore(t *testing.T) {
	t.Run("Hit", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()

		entry := storemodels.CachedScore{Probability: 0.2, Tier: "LOW", Advisory: "low risk — generally acceptable for consideration."}
		data, _ := json.Marshal(entry)
		mock.ExpectGet(storemodels.ScoreCacheKeyBuilder("fp-2")).SetVal(string(data))

		got, err := adapter.GetScore(ctx, "fp-2")

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, entry, *got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()

		mock.ExpectGet(storemodels.ScoreCacheKeyBuilder("fp-3")).RedisNil()

		got, err := adapter.GetScore(ctx, "fp-3")

		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()

		mock.ExpectGet(storemodels.ScoreCacheKeyBuilder("fp-4")).SetErr(redis.ErrClosed)

		_, err := adapter.GetScore(ctx, "fp-4")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Corrupt entry", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db, time.Minute)
		ctx := context.Background()

		mock.ExpectGet(storemodels.ScoreCacheKeyBuilder("fp-5")).SetVal("{not json")

		_, err := adapter.GetScore(ctx, "fp-5")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
