// Package vectorizer turns a mixed categorical/numeric applicant record into
// the fixed-length feature vector the classifier consumes. It mirrors the
// transform of a fitted scikit-learn DictVectorizer, read from a JSON export
// of its public attributes (feature_names, vocabulary, separator).
package vectorizer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Vectorizer struct {
	FeatureNames []string       `json:"feature_names" validate:"required,min=1"`
	Vocabulary   map[string]int `json:"vocabulary" validate:"required,min=1"`
	Separator    string         `json:"separator"`
}

// LoadFromFile reads a fitted vectorizer export. The export must hold a
// bijection: vocabulary maps every feature name to its column index.
func LoadFromFile(path string) (*Vectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read encoder artifact %s: %w", path, err)
	}

	var v Vectorizer
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse encoder artifact %s: %w", path, err)
	}

	if v.Separator == "" {
		v.Separator = "="
	}

	if err := validate.Struct(&v); err != nil {
		return nil, fmt.Errorf("encoder artifact %s failed validation: %w", path, err)
	}

	if len(v.Vocabulary) != len(v.FeatureNames) {
		return nil, fmt.Errorf("encoder artifact %s inconsistent: %d feature names but %d vocabulary entries",
			path, len(v.FeatureNames), len(v.Vocabulary))
	}
	for i, name := range v.FeatureNames {
		idx, ok := v.Vocabulary[name]
		if !ok || idx != i {
			return nil, fmt.Errorf("encoder artifact %s inconsistent: feature %q not at column %d", path, name, i)
		}
	}

	return &v, nil
}

// Transform encodes one record into a dense feature vector. Numeric values
// land in their named column; string values one-hot their name<sep>value
// column. Feature names and categorical values unseen at fit time are
// silently ignored, matching the fitted transform.
func (v *Vectorizer) Transform(record map[string]any) ([]float64, error) {
	out := make([]float64, len(v.FeatureNames))

	for name, raw := range record {
		if s, ok := raw.(string); ok {
			if idx, ok := v.Vocabulary[name+v.Separator+s]; ok {
				out[idx] = 1.0
			}
			continue
		}

		num, ok := toFloat(raw)
		if !ok {
			return nil, fmt.Errorf("feature %q has unsupported value type %T", name, raw)
		}
		if idx, ok := v.Vocabulary[name]; ok {
			out[idx] = num
		}
	}

	return out, nil
}

// NumFeatures reports the encoded vector length.
func (v *Vectorizer) NumFeatures() int {
	return len(v.FeatureNames)
}

func toFloat(raw any) (float64, bool) {
	switch val := raw.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case bool:
		if val {
			return 1.0, true
		}
		return 0.0, true
	default:
		return 0, false
	}
}
