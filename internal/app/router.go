package app

import (
	"sensai_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/", c.health.Root)
	router.GET("/test", c.health.TestDatabase)
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.POST("/quiz", c.quiz.SubmitQuiz)
		api.GET("/quiz/stats", c.quiz.GetStats)
		api.GET("/quiz/recent", c.quiz.GetRecent)

		api.POST("/resume", c.resume.UpsertResume)
		api.GET("/resume", c.resume.GetResume)

		api.POST("/cover-letter", c.coverLetter.Generate)

		api.GET("/insights", c.insight.GetInsights)
	}
}
