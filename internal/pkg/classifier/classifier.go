// Package classifier wraps the trained gradient-boosted model behind the
// probability interface the scoring service consumes.
package classifier

import (
	"fmt"

	"github.com/dmitryikh/leaves"
)

type XGBClassifier struct {
	ensemble *leaves.Ensemble
}

// LoadFromFile reads an XGBoost model dump. The transformation is loaded with
// it, so a binary:logistic model emits sigmoid probabilities in [0,1].
func LoadFromFile(path string) (*XGBClassifier, error) {
	ensemble, err := leaves.XGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifact %s: %w", path, err)
	}
	return &XGBClassifier{ensemble: ensemble}, nil
}

// PredictProbability scores one encoded record.
func (c *XGBClassifier) PredictProbability(features []float64) (float64, error) {
	if len(features) < c.ensemble.NFeatures() {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d",
			len(features), c.ensemble.NFeatures())
	}
	return c.ensemble.PredictSingle(features, 0), nil
}

// NumFeatures reports the feature count the model was trained on.
func (c *XGBClassifier) NumFeatures() int {
	return c.ensemble.NFeatures()
}
