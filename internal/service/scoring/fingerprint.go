package scoring

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"credit-scoring/internal/pkg/models"
)

// Fingerprint identifies a sanitized record for memoization. JSON field
// order is fixed by the struct definition, so equal records hash equal.
func Fingerprint(record models.ApplicantRecord) string {
	data, _ := json.Marshal(record)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
