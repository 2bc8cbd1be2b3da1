package cleanup

import (
	"context"
	"net/http"
	"time"

	"credit-scoring/internal/pkg/db/redis"
	"credit-scoring/internal/pkg/log_messages"
	"credit-scoring/internal/pkg/logger"
)

func CleanupResources(
	ctx context.Context,
	redisClient *redis.RedisClient,
	server *http.Server,
) {
	logger.CtxInfo(ctx, log_messages.CleanupStarted)

	cleanupRedisResource(redisClient, ctx)
	cleanupHTTPServer(server, ctx)

	logger.CtxInfo(ctx, log_messages.CleanupCompleted)
}

func cleanupRedisResource(redisClient *redis.RedisClient, ctx context.Context) {
	if redisClient == nil || redisClient.Client == nil {
		return
	}
	if err := redis.Disconnect(redisClient.Client); err != nil {
		logger.CtxError(ctx, "Failed to close Redis client", err)
	} else {
		logger.CtxInfo(ctx, "Redis client closed successfully")
	}
}

func cleanupHTTPServer(server *http.Server, ctx context.Context) {
	if server == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.CtxError(ctx, "Failed to shutdown HTTP server", err)
	} else {
		logger.CtxInfo(ctx, "HTTP server shutdown successfully")
	}
}
