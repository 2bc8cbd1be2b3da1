package utils

import (
	"errors"

	"credit-scoring/internal/pkg/models"
)

// GetErrorCode maps an error to its stable API code. Errors without a code,
// including wrapped ones, fall back to the internal error code.
func GetErrorCode(err error) string {
	var coded models.CodedError
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return models.ErrCodeInternal
}
