package scoring

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"credit-scoring/internal/pkg/models"
)

// SanitizeNonNegative normalizes a value meant to represent a non-negative
// monetary or quantity field. Values that fail numeric conversion come back
// as 0.0 rather than an error: silent recovery keeps the decision-support
// flow available on malformed input. Parseable values clamp up to zero.
// The function is total and idempotent.
func SanitizeNonNegative(value any) float64 {
	v, ok := toNumber(value)
	if !ok || math.IsNaN(v) {
		return 0.0
	}
	if v < 0 {
		return 0.0
	}
	return v
}

// SanitizeRecord returns the record with its monetary fields clamped to the
// non-negative domain. The other fields pass through untouched.
func SanitizeRecord(record models.ApplicantRecord) models.ApplicantRecord {
	record.Income = SanitizeNonNegative(record.Income)
	record.Assets = SanitizeNonNegative(record.Assets)
	record.Debt = SanitizeNonNegative(record.Debt)
	return record
}

func toNumber(value any) (float64, bool) {
	switch val := value.(type) {
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
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
