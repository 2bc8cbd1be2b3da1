package models

// CachedScore is the memoized outcome for one sanitized record fingerprint.
// Scoring is deterministic for fixed artifacts, so replaying the entry is
// indistinguishable from recomputing it.
type CachedScore struct {
	Probability float64 `json:"probability"`
	Tier        string  `json:"tier"`
	Advisory    string  `json:"advisory"`
}

// ScoreCacheKeyBuilder builds the Redis key for a record fingerprint.
func ScoreCacheKeyBuilder(fingerprint string) string {
	return "credit-scoring:score:" + fingerprint
}
