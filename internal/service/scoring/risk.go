package scoring

import "credit-scoring/internal/pkg/models"

// Risk thresholds are fixed policy constants, not tunables derived from data.
const (
	mediumThreshold = 0.33
	highThreshold   = 0.66
)

const (
	advisoryLow    = "low risk — generally acceptable for consideration."
	advisoryMedium = "medium risk — additional verification recommended."
	advisoryHigh   = "high risk — strict evaluation recommended."
)

// ClassifyRisk buckets a probability of default into a tier with advisory
// text. Exactly 0.33 is MEDIUM and exactly 0.66 is HIGH. Inputs outside
// [0,1] do not fault: anything below 0.33 is LOW regardless of sign,
// anything at or above 0.66 is HIGH regardless of magnitude.
func ClassifyRisk(probability float64) (models.RiskTier, string) {
	switch {
	case probability < mediumThreshold:
		return models.TierLow, advisoryLow
	case probability < highThreshold:
		return models.TierMedium, advisoryMedium
	default:
		return models.TierHigh, advisoryHigh
	}
}
