package interfaces

import (
	"context"

	"credit-scoring/internal/pkg/models"
	storemodels "credit-scoring/internal/pkg/store/models"
)

// Encoder turns a record into the fixed-length feature vector the model
// consumes.
type Encoder interface {
	Transform(record map[string]any) ([]float64, error)
}

// Classifier produces a probability of default from an encoded record.
type Classifier interface {
	PredictProbability(features []float64) (float64, error)
}

// ArtifactProvider hands out the process-wide encoder and classifier pair,
// loading it on first use.
type ArtifactProvider interface {
	Artifacts(ctx context.Context) (Encoder, Classifier, error)
}

// ScoreCache memoizes scoring results keyed by sanitized-record fingerprint.
// A nil entry with a nil error is a cache miss.
type ScoreCache interface {
	GetScore(ctx context.Context, fingerprint string) (*storemodels.CachedScore, error)
	SaveScore(ctx context.Context, fingerprint string, entry storemodels.CachedScore) error
}

// ScoringServiceInterface runs the sanitize, encode, predict and classify
// pipeline for one applicant record.
type ScoringServiceInterface interface {
	Score(ctx context.Context, record models.ApplicantRecord) (*models.PredictionResult, error)
}
