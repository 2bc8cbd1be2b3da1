// Package artifacts owns the process-wide encoder/classifier pair. The pair
// is loaded lazily on first use and never mutated afterwards; concurrent
// first accesses resolve to a single load. A failed load is not cached, so
// the next access retries.
package artifacts

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"credit-scoring/internal/pkg/classifier"
	"credit-scoring/internal/pkg/config"
	"credit-scoring/internal/pkg/log_messages"
	"credit-scoring/internal/pkg/logger"
	"credit-scoring/internal/pkg/models"
	"credit-scoring/internal/pkg/vectorizer"
	"credit-scoring/internal/service/interfaces"
)

var (
	loadEncoder = func(path string) (interfaces.Encoder, error) {
		return vectorizer.LoadFromFile(path)
	}
	loadClassifier = func(path string) (interfaces.Classifier, error) {
		return classifier.LoadFromFile(path)
	}
)

type Handle struct {
	cfg config.ArtifactsConfig

	mu     sync.Mutex
	enc    interfaces.Encoder
	clf    interfaces.Classifier
	loaded bool
}

func NewHandle(cfg config.ArtifactsConfig) *Handle {
	return &Handle{cfg: cfg}
}

// Artifacts returns the loaded encoder and classifier, loading both on the
// first call. An absent file surfaces as ArtifactMissingError naming the
// path; unreadable content surfaces as ScoringFailedError.
func (h *Handle) Artifacts(ctx context.Context) (interfaces.Encoder, interfaces.Classifier, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.loaded {
		return h.enc, h.clf, nil
	}

	logger.CtxInfo(ctx, log_messages.ArtifactLoadStarted,
		slog.String("encoder_path", h.cfg.EncoderPath),
		slog.String("model_path", h.cfg.ModelPath),
	)

	for _, path := range []string{h.cfg.EncoderPath, h.cfg.ModelPath} {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				missing := &models.ArtifactMissingError{Path: path}
				logger.CtxError(ctx, log_messages.ErrorArtifactMissing, missing, slog.String("path", path))
				return nil, nil, missing
			}
			logger.CtxError(ctx, log_messages.ErrorArtifactLoad, err, slog.String("path", path))
			return nil, nil, &models.ScoringFailedError{Message: "failed to stat artifact " + path, Err: err}
		}
	}

	enc, err := loadEncoder(h.cfg.EncoderPath)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorArtifactLoad, err, slog.String("path", h.cfg.EncoderPath))
		return nil, nil, &models.ScoringFailedError{Message: "failed to load encoder artifact", Err: err}
	}

	clf, err := loadClassifier(h.cfg.ModelPath)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorArtifactLoad, err, slog.String("path", h.cfg.ModelPath))
		return nil, nil, &models.ScoringFailedError{Message: "failed to load model artifact", Err: err}
	}

	h.enc = enc
	h.clf = clf
	h.loaded = true

	logger.CtxInfo(ctx, log_messages.ArtifactLoadCompleted)
	return h.enc, h.clf, nil
}
