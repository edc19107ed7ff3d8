package websocket

import (
	"encoding/json"
	"time"

	"CheckDiskGo/internal/pkg/logger"
)

// MarshalReport wraps a disk report in the stream message envelope
func MarshalReport(rep interface{}) ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"report":    rep,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// BroadcastReport sends a disk report to all connected report clients
func (r *Registry) BroadcastReport(rep interface{}) {
	handler := r.GetReportHandler()
	if handler == nil {
		return
	}

	data, err := MarshalReport(rep)
	if err != nil {
		logger.Error("Failed to marshal report for WebSocket broadcast",
			logger.String("error", err.Error()))
		return
	}
	handler.Broadcast(data)
}
