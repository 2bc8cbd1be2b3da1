package handlers

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"credit-scoring/internal/pkg/consts"
	"credit-scoring/internal/pkg/log_messages"
	"credit-scoring/internal/pkg/logger"
	"credit-scoring/internal/pkg/models"
	"credit-scoring/internal/service/interfaces"
	"credit-scoring/internal/service/scoring"
)

type FormHandler struct {
	service interfaces.ScoringServiceInterface
}

func NewFormHandler(service interfaces.ScoringServiceInterface) *FormHandler {
	return &FormHandler{service: service}
}

// ShowForm renders the scoring form pre-filled with the documented defaults.
func (h *FormHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", h.formData(models.DefaultApplicantRecord(), ""))
}

// SubmitForm scores the submitted applicant. Form input never rejects: bad
// numeric text sanitizes to zero and unknown select values fall back to the
// defaults, so only a pipeline failure reaches the error banner.
func (h *FormHandler) SubmitForm(c *gin.Context) {
	ctx := c.Request.Context()
	record := recordFromForm(c)

	logger.CtxInfo(ctx, log_messages.ScoreRequestStarted)

	result, err := h.service.Score(ctx, record)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorScoringFailed, err)
		c.HTML(http.StatusInternalServerError, "form.html", h.formData(record, err.Error()))
		return
	}

	c.HTML(http.StatusOK, "result.html", gin.H{
		"Title":              "Credit Risk Score",
		"ProbabilityDisplay": fmt.Sprintf("%.3f", result.Probability),
		"BarWidth":           barWidth(result.Probability),
		"Tier":               result.Tier,
		"TierClass":          tierClass(result.Tier),
		"Advisory":           result.Advisory,
		"Record":             scoring.SanitizeRecord(record),
		"FormPath":           c.Request.URL.Path,
		"Footer":             consts.ModelFooter,
	})
}

func (h *FormHandler) formData(record models.ApplicantRecord, errMsg string) gin.H {
	return gin.H{
		"Title":          "Credit Risk Scoring",
		"Record":         record,
		"HomeOptions":    consts.HomeOptions,
		"MaritalOptions": consts.MaritalOptions,
		"RecordsOptions": consts.RecordsOptions,
		"JobOptions":     consts.JobOptions,
		"Footer":         consts.ModelFooter,
		"Error":          errMsg,
	}
}

func recordFromForm(c *gin.Context) models.ApplicantRecord {
	defaults := models.DefaultApplicantRecord()
	return models.ApplicantRecord{
		Seniority: formInt(c, "seniority", defaults.Seniority),
		Home:      formChoice(c, "home", consts.HomeOptions, defaults.Home),
		Time:      formInt(c, "time", defaults.Time),
		Age:       formInt(c, "age", defaults.Age),
		Marital:   formChoice(c, "marital", consts.MaritalOptions, defaults.Marital),
		Records:   formChoice(c, "records", consts.RecordsOptions, defaults.Records),
		Job:       formChoice(c, "job", consts.JobOptions, defaults.Job),
		Expenses:  formInt(c, "expenses", defaults.Expenses),
		Income:    formFloat(c, "income", defaults.Income),
		Assets:    formFloat(c, "assets", defaults.Assets),
		Debt:      formFloat(c, "debt", defaults.Debt),
		Amount:    formInt(c, "amount", defaults.Amount),
		Price:     formInt(c, "price", defaults.Price),
	}
}

func formInt(c *gin.Context, name string, fallback int) int {
	raw, ok := c.GetPostForm(name)
	if !ok {
		return fallback
	}
	return int(scoring.SanitizeNonNegative(raw))
}

func formFloat(c *gin.Context, name string, fallback float64) float64 {
	raw, ok := c.GetPostForm(name)
	if !ok {
		return fallback
	}
	return scoring.SanitizeNonNegative(raw)
}

func formChoice(c *gin.Context, name string, options []string, fallback string) string {
	raw, ok := c.GetPostForm(name)
	if !ok {
		return fallback
	}
	for _, option := range options {
		if option == raw {
			return raw
		}
	}
	return fallback
}

func barWidth(probability float64) int {
	p := math.Min(math.Max(probability, 0), 1)
	return int(math.Round(p * 100))
}

func tierClass(tier models.RiskTier) string {
	switch tier {
	case models.TierLow:
		return "tier-low"
	case models.TierMedium:
		return "tier-medium"
	default:
		return "tier-high"
	}
}
