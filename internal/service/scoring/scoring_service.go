package scoring

import (
	"context"
	"log/slog"

	"credit-scoring/internal/pkg/log_messages"
	"credit-scoring/internal/pkg/logger"
	"credit-scoring/internal/pkg/models"
	storemodels "credit-scoring/internal/pkg/store/models"
	"credit-scoring/internal/service/interfaces"
)

// ScoringService runs the sanitize, encode, predict and classify pipeline.
// The cache is optional; a nil cache means every request computes.
type ScoringService struct {
	artifacts interfaces.ArtifactProvider
	cache     interfaces.ScoreCache
}

func NewScoringService(artifacts interfaces.ArtifactProvider, cache interfaces.ScoreCache) *ScoringService {
	return &ScoringService{
		artifacts: artifacts,
		cache:     cache,
	}
}

// Score produces the probability of default and risk tier for one applicant
// record. Failures surface as ArtifactMissingError or ScoringFailedError;
// cache trouble never fails the request.
func (s *ScoringService) Score(ctx context.Context, record models.ApplicantRecord) (*models.PredictionResult, error) {
	sanitized := SanitizeRecord(record)
	fingerprint := Fingerprint(sanitized)

	if s.cache != nil {
		entry, err := s.cache.GetScore(ctx, fingerprint)
		if err != nil {
			logger.CtxWarn(ctx, log_messages.ErrorScoreCacheLookup, slog.Any("error", err))
		} else if entry != nil {
			logger.CtxDebug(ctx, log_messages.ScoreCacheHit, slog.String("fingerprint", fingerprint))
			return &models.PredictionResult{
				Probability: entry.Probability,
				Tier:        models.RiskTier(entry.Tier),
				Advisory:    entry.Advisory,
			}, nil
		}
	}

	encoder, classifier, err := s.artifacts.Artifacts(ctx)
	if err != nil {
		return nil, err
	}

	features, err := encoder.Transform(sanitized.Features())
	if err != nil {
		failed := &models.ScoringFailedError{Message: "feature transformation failed", Err: err}
		logger.CtxError(ctx, log_messages.ErrorScoringFailed, failed)
		return nil, failed
	}

	probability, err := classifier.PredictProbability(features)
	if err != nil {
		failed := &models.ScoringFailedError{Message: "inference failed", Err: err}
		logger.CtxError(ctx, log_messages.ErrorScoringFailed, failed)
		return nil, failed
	}

	tier, advisory := ClassifyRisk(probability)
	result := &models.PredictionResult{
		Probability: probability,
		Tier:        tier,
		Advisory:    advisory,
	}

	if s.cache != nil {
		entry := storemodels.CachedScore{
			Probability: probability,
			Tier:        string(tier),
			Advisory:    advisory,
		}
		if err := s.cache.SaveScore(ctx, fingerprint, entry); err != nil {
			logger.CtxWarn(ctx, log_messages.ErrorScoreCacheStore, slog.Any("error", err))
		}
	}

	logger.CtxInfo(ctx, log_messages.ScoreRequestCompleted,
		slog.Float64("probability", probability),
		slog.String("tier", string(tier)),
	)
	return result, nil
}
