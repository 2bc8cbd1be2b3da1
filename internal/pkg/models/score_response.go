package models

// ScoreResponse is the JSON API result. ProbabilityDisplay carries the
// 3-decimal rendering used on every output surface; Record echoes the
// sanitized input the model actually scored.
type ScoreResponse struct {
	Probability        float64         `json:"probability"`
	ProbabilityDisplay string          `json:"probability_display"`
	Tier               RiskTier        `json:"tier"`
	Advisory           string          `json:"advisory"`
	Record             ApplicantRecord `json:"record"`
}
