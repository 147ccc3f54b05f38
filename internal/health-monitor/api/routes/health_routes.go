package routes

import (
	"VCS_Registry_Health/internal/health-monitor/api/handler"

	"github.com/gin-gonic/gin"
)

func SetUpHealthRoutes(r *gin.Engine, handler handler.HealthHandler) {
	healthRoutes := r.Group("/health/services")
	healthRoutes.GET("/:id", handler.GetServiceHealth())
	healthRoutes.GET("/:id/logs", handler.GetServiceHealthLogs())
	healthRoutes.POST("/:id/check", handler.TriggerServiceHealthCheck())
}
