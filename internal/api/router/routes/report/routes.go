package report

import (
	"CheckDiskGo/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all disk report routes
func RegisterRoutes(engine *gin.Engine, reportHandler *handlers.ReportHandler) {
	reportGroup := engine.Group("/api/report")
	{
		reportGroup.GET("", reportHandler.GetReport)
		reportGroup.POST("/refresh", reportHandler.RefreshReport)
	}

	engine.GET("/api/volumes", reportHandler.GetVolumes)
}
