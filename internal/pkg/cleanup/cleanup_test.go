package cleanup

import (
	"context"
	"net/http"
	"testing"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	redispkg "credit-scoring/internal/pkg/db/redis"
)

func TestCleanupResources(t *testing.T) {
	ctx := context.Background()
	CleanupResources(ctx, nil, nil)
}

func TestCleanupResourcesWithServer(t *testing.T) {
	ctx := context.Background()
	testServer := &http.Server{
		Addr: ":0",
	}
	CleanupResources(ctx, nil, testServer)
}

func TestCleanupResourcesWithRedis(t *testing.T) {
	ctx := context.Background()

	// Redis client with dummy addr; Close does not require a live server
	rClient := redisv9.NewClient(&redisv9.Options{Addr: "127.0.0.1:0"})
	redisWrap := &redispkg.RedisClient{Client: rClient}

	server := &http.Server{Addr: ":0"}

	CleanupResources(ctx, redisWrap, server)
}

func TestCleanupResourcesWithNilRedisClient(t *testing.T) {
	ctx := context.Background()
	CleanupResources(ctx, &redispkg.RedisClient{}, nil)
}

func TestCleanupResourcesWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	testServer := &http.Server{
		Addr: ":0",
	}
	CleanupResources(ctx, nil, testServer)
}

func TestCleanupResourcesWithRealServer(t *testing.T) {
	ctx := context.Background()

	server := &http.Server{
		Addr:         ":0",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	CleanupResources(ctx, nil, server)
}

func TestCleanupResourcesConcurrent(t *testing.T) {
	ctx := context.Background()

	done := make(chan bool, 5)

	for i := 0; i < 5; i++ {
		go func() {
			CleanupResources(ctx, nil, nil)
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		<-done
	}
}
