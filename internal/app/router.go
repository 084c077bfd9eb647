package app

import (
	"edms_training_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/data", c.data.GetData)
		api.POST("/login", c.auth.Login)
		api.POST("/users", c.user.SaveUsers)
		api.POST("/training-data", c.training.SaveTrainingData)
		api.POST("/training-images/upload", c.training.UploadImage)
		api.POST("/attempts", c.attempt.SaveAttempt)
		api.GET("/export", c.backup.Export)
		api.POST("/import", c.backup.Import)
	}
}
