package websocket

import (
	"CheckDiskGo/internal/monitoring/smart"

	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes registers the websocket routes
func RegisterWebSocketRoutes(router *gin.Engine, smartMonitor *smart.Monitor) {
	// Disk report stream endpoint
	router.GET("/ws/report", func(c *gin.Context) {
		smartMonitor.WebSocketHandler(c)
	})
}
