package log_messages

const (
	FailedLoadingConfiguration = "Failed to load configuration: %v"
	ServerStartFailure         = "failed to start server: %v"
	ServerExiting              = "Server exiting"
	CleanupStarted             = "Starting cleanup of resources..."
	CleanupCompleted           = "All resources cleaned up successfully"

	// Artifact lifecycle
	ArtifactLoadStarted   = "Loading scoring artifacts..."
	ArtifactLoadCompleted = "Scoring artifacts loaded"
	ErrorArtifactMissing  = "Required scoring artifact is missing"
	ErrorArtifactLoad     = "Failed to load scoring artifact"

	// Scoring flow
	ScoreRequestStarted      = "New scoring request started"
	ScoreRequestCompleted    = "Scoring request completed"
	ErrorInvalidScoreRequest = "Invalid scoring request"
	ErrorScoringFailed       = "Scoring failed"

	// Score cache (non-critical, degrades to recompute)
	ScoreCacheHit         = "Score served from cache"
	ErrorScoreCacheLookup = "Score cache lookup failed"
	ErrorScoreCacheStore  = "Score cache store failed"
	ErrorCacheUnavailable = "Score cache unavailable, scoring without cache"
)
