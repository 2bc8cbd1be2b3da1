package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"credit-scoring/internal/pkg/log_messages"
	"credit-scoring/internal/pkg/logger"
	"credit-scoring/internal/pkg/models"
	"credit-scoring/internal/service/interfaces"
	"credit-scoring/internal/service/scoring"
	"credit-scoring/utils"
)

type ScoreHandler struct {
	service interfaces.ScoringServiceInterface
}

func NewScoreHandler(service interfaces.ScoringServiceInterface) *ScoreHandler {
	return &ScoreHandler{service: service}
}

// Score handles the JSON scoring endpoint. Malformed or out-of-domain
// payloads get a 400; pipeline failures get a 500 with a machine-readable
// error code.
func (h *ScoreHandler) Score(c *gin.Context) {
	ctx := c.Request.Context()

	var body models.ScoreRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.CtxWarn(ctx, log_messages.ErrorInvalidScoreRequest, slog.Any("error", err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.CtxInfo(ctx, log_messages.ScoreRequestStarted)

	record := body.ToRecord()
	result, err := h.service.Score(ctx, record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  utils.GetErrorCode(err),
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ScoreResponse{
		Probability:        result.Probability,
		ProbabilityDisplay: fmt.Sprintf("%.3f", result.Probability),
		Tier:               result.Tier,
		Advisory:           result.Advisory,
		Record:             scoring.SanitizeRecord(record),
	})
}
