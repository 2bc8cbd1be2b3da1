package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"credit-scoring/internal/app/router"
	"credit-scoring/internal/pkg/artifacts"
	"credit-scoring/internal/pkg/cleanup"
	"credit-scoring/internal/pkg/config"
	"credit-scoring/internal/pkg/db/redis"
	"credit-scoring/internal/pkg/log_messages"
	"credit-scoring/internal/pkg/logger"
	"credit-scoring/internal/pkg/store/repository"
	"credit-scoring/internal/service/interfaces"
	"credit-scoring/internal/service/scoring"
)

var connectRedisDB = func(ctx context.Context, cfg config.RedisConfig) (*redis.RedisClient, error) {
	return redis.ConnectToRedis(ctx, cfg, nil)
}

// App encapsulates application resources and lifecycle.
type App struct {
	Cfg            *config.AppConfig
	RedisClient    *redis.RedisClient
	Artifacts      *artifacts.Handle
	ScoringService interfaces.ScoringServiceInterface
	HTTPServer     *http.Server
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadFromConfig()
	if err != nil {
		logger.CtxError(ctx, log_messages.FailedLoadingConfiguration, err)
		return nil, err
	}
	logger.Init(cfg.Logging.LogLevel)

	artifactHandle := artifacts.NewHandle(cfg.Artifacts)

	// The cache is an optimization: a Redis outage downgrades to computing
	// every score instead of blocking startup.
	var rClient *redis.RedisClient
	var cache interfaces.ScoreCache
	if cfg.Cache.Enabled {
		rClient, err = connectRedisDB(ctx, cfg.Redis)
		if err != nil {
			logger.CtxWarn(ctx, log_messages.ErrorCacheUnavailable, slog.Any("error", err))
			rClient = nil
		} else {
			cache = repository.NewRedisStoreAdapter(rClient.Client, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		}
	}

	scoringService := scoring.NewScoringService(artifactHandle, cache)

	return &App{
		Cfg:            cfg,
		RedisClient:    rClient,
		Artifacts:      artifactHandle,
		ScoringService: scoringService,
	}, nil
}

// Run starts the HTTP server, then blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	gin.SetMode(a.Cfg.Server.GinMode)

	engine := router.SetupRouter(ctx, a.ScoringService)
	a.HTTPServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.CtxError(ctx, log_messages.ServerStartFailure, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.Shutdown(ctx)
	logger.CtxInfo(ctx, log_messages.ServerExiting)
	return nil
}

// Shutdown gracefully closes all resources with bounded timeouts.
func (a *App) Shutdown(ctx context.Context) {
	cleanup.CleanupResources(ctx, a.RedisClient, a.HTTPServer)
}
