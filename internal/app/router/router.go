package router

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"credit-scoring/internal/app/handlers"
	"credit-scoring/internal/app/web"
	"credit-scoring/internal/pkg/logger"
	"credit-scoring/internal/service/interfaces"
)

func SetupRouter(ctx context.Context, scoringService interfaces.ScoringServiceInterface) *gin.Engine {
	server := gin.Default()
	server.Use(traceMiddleware())
	server.SetHTMLTemplate(web.Templates())

	healthCheckHandler := handlers.NewHealthCheckHandler()
	server.GET("/IntegrationServices/Dodrio/CreditScoringService/HealthCheck", healthCheckHandler.HealthCheck)

	scoreHandler := handlers.NewScoreHandler(scoringService)
	server.POST("/IntegrationServices/Dodrio/CreditScoring", scoreHandler.Score)

	formHandler := handlers.NewFormHandler(scoringService)
	server.GET("/IntegrationServices/Dodrio/CreditScoring/Form", formHandler.ShowForm)
	server.POST("/IntegrationServices/Dodrio/CreditScoring/Form", formHandler.SubmitForm)

	return server
}

// traceMiddleware stamps every request context with a fresh trace id so the
// log lines for one request can be correlated.
func traceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		c.Request = c.Request.WithContext(logger.WithTraceID(c.Request.Context(), traceID))
		c.Next()
	}
}
