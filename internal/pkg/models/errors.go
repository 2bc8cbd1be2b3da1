package models

import "fmt"

const (
	ErrCodeArtifactMissing = "CS_ARTIFACT_MISSING"
	ErrCodeScoringFailed   = "CS_SCORING_FAILED"
	ErrCodeInternal        = "CS_INTERNAL_ERROR"
)

// CodedError is implemented by errors that map to a stable error code on the
// API surface.
type CodedError interface {
	error
	ErrorCode() string
}

// ArtifactMissingError reports a required artifact file absent at load time.
// It names the offending path and is never retried within a request.
type ArtifactMissingError struct {
	Path string
}

func (e *ArtifactMissingError) Error() string {
	return fmt.Sprintf("required artifact missing: %s", e.Path)
}

func (e *ArtifactMissingError) ErrorCode() string {
	return ErrCodeArtifactMissing
}

// ScoringFailedError reports any failure during feature transformation or
// inference. The caller stays usable; the diagnostic is carried for display.
type ScoringFailedError struct {
	Message string
	Err     error
}

func (e *ScoringFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ScoringFailedError) Unwrap() error {
	return e.Err
}

func (e *ScoringFailedError) ErrorCode() string {
	return ErrCodeScoringFailed
}
