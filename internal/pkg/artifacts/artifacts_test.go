package artifacts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-scoring/internal/pkg/config"
	"credit-scoring/internal/pkg/models"
	"credit-scoring/internal/service/interfaces"
)

type stubEncoder struct{}

func (stubEncoder) Transform(map[string]any) ([]float64, error) { return []float64{1}, nil }

type stubClassifier struct{}

func (stubClassifier) PredictProbability([]float64) (float64, error) { return 0.5, nil }

func writeArtifactFiles(t *testing.T) config.ArtifactsConfig {
	t.Helper()
	dir := t.TempDir()
	encPath := filepath.Join(dir, "dict_vectorizer.json")
	modelPath := filepath.Join(dir, "xgb_credit_risk.model")
	require.NoError(t, os.WriteFile(encPath, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(modelPath, []byte("model"), 0644))
	return config.ArtifactsConfig{EncoderPath: encPath, ModelPath: modelPath}
}

func swapLoaders(t *testing.T,
	enc func(string) (interfaces.Encoder, error),
	clf func(string) (interfaces.Classifier, error),
) {
	t.Helper()
	origEnc, origClf := loadEncoder, loadClassifier
	loadEncoder, loadClassifier = enc, clf
	t.Cleanup(func() {
		loadEncoder, loadClassifier = origEnc, origClf
	})
}

func TestArtifacts_MissingEncoderFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.ArtifactsConfig{
		EncoderPath: filepath.Join(dir, "missing_encoder.json"),
		ModelPath:   filepath.Join(dir, "missing_model.model"),
	}

	h := NewHandle(cfg)
	_, _, err := h.Artifacts(context.Background())

	var missing *models.ArtifactMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, cfg.EncoderPath, missing.Path)
}

func TestArtifacts_MissingModelFile(t *testing.T) {
	dir := t.TempDir()
	encPath := filepath.Join(dir, "dict_vectorizer.json")
	require.NoError(t, os.WriteFile(encPath, []byte("{}"), 0644))
	cfg := config.ArtifactsConfig{
		EncoderPath: encPath,
		ModelPath:   filepath.Join(dir, "missing_model.model"),
	}

	h := NewHandle(cfg)
	_, _, err := h.Artifacts(context.Background())

	var missing *models.ArtifactMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, cfg.ModelPath, missing.Path)
}

func TestArtifacts_LoadsOnce(t *testing.T) {
	var loads atomic.Int32
	swapLoaders(t,
		func(string) (interfaces.Encoder, error) {
			loads.Add(1)
			return stubEncoder{}, nil
		},
		func(string) (interfaces.Classifier, error) { return stubClassifier{}, nil },
	)

	h := NewHandle(writeArtifactFiles(t))

	enc1, clf1, err := h.Artifacts(context.Background())
	require.NoError(t, err)
	enc2, clf2, err := h.Artifacts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), loads.Load())
	assert.Equal(t, enc1, enc2)
	assert.Equal(t, clf1, clf2)
}

func TestArtifacts_ConcurrentFirstAccessSingleLoad(t *testing.T) {
	var loads atomic.Int32
	swapLoaders(t,
		func(string) (interfaces.Encoder, error) {
			loads.Add(1)
			return stubEncoder{}, nil
		},
		func(string) (interfaces.Classifier, error) { return stubClassifier{}, nil },
	)

	h := NewHandle(writeArtifactFiles(t))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := h.Artifacts(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
}

func TestArtifacts_FailedLoadRetries(t *testing.T) {
	var calls atomic.Int32
	swapLoaders(t,
		func(string) (interfaces.Encoder, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("corrupt artifact")
			}
			return stubEncoder{}, nil
		},
		func(string) (interfaces.Classifier, error) { return stubClassifier{}, nil },
	)

	h := NewHandle(writeArtifactFiles(t))

	_, _, err := h.Artifacts(context.Background())
	var failed *models.ScoringFailedError
	require.ErrorAs(t, err, &failed)

	// failure is not cached, the next access loads successfully
	enc, clf, err := h.Artifacts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, enc)
	assert.NotNil(t, clf)
	assert.Equal(t, int32(2), calls.Load())
}

func TestArtifacts_ClassifierLoadFailure(t *testing.T) {
	swapLoaders(t,
		func(string) (interfaces.Encoder, error) { return stubEncoder{}, nil },
		func(string) (interfaces.Classifier, error) { return nil, errors.New("bad model dump") },
	)

	h := NewHandle(writeArtifactFiles(t))

	_, _, err := h.Artifacts(context.Background())
	var failed *models.ScoringFailedError
	require.ErrorAs(t, err, &failed)
	assert.Contains(t, err.Error(), "bad model dump")
}
