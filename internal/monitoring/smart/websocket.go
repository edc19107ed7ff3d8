package smart

import (
	"CheckDiskGo/internal/pkg/logger"
	"CheckDiskGo/internal/websocket"

	"github.com/gin-gonic/gin"
)

// WebSocketHandler creates a handler function for the disk report WebSocket.
// New clients get the cached report; a fresh check is never forced here
// because every check triggers an elevation prompt on the host.
func (m *Monitor) WebSocketHandler(c *gin.Context) {
	if m == nil {
		logger.Error("Disk health monitor is nil in WebSocketHandler")
		c.String(500, "Internal server error: disk health monitor not initialized")
		return
	}

	registry := websocket.GetRegistry()
	handler := registry.GetReportHandler()
	if handler == nil {
		handler = websocket.NewHandler()
		registry.RegisterReportHandler(handler)
	}

	logger.Info("New WebSocket client connected for disk report stream",
		logger.String("client_ip", c.ClientIP()))

	var initial []byte
	if rep := m.GetLastReport(); rep != nil {
		data, err := websocket.MarshalReport(rep)
		if err != nil {
			logger.Error("Failed to marshal cached report for new client",
				logger.String("error", err.Error()))
		} else {
			initial = data
		}
	}

	handler.ServeHTTPWithInitial(c.Writer, c.Request, initial)
}
