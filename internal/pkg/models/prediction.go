package models

// RiskTier is the discrete risk bucket derived from the probability of default.
type RiskTier string

const (
	TierLow    RiskTier = "LOW"
	TierMedium RiskTier = "MEDIUM"
	TierHigh   RiskTier = "HIGH"
)

// PredictionResult is created fresh per scoring request and never persisted.
type PredictionResult struct {
	Probability float64  `json:"probability"`
	Tier        RiskTier `json:"tier"`
	Advisory    string   `json:"advisory"`
}
