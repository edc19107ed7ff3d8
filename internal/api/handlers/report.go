package handlers

import (
	"errors"
	"net/http"
	"strings"

	"CheckDiskGo/internal/checker"
	"CheckDiskGo/internal/monitoring/smart"
	"CheckDiskGo/internal/monitoring/volumes"
	"CheckDiskGo/internal/pkg/config"
	"CheckDiskGo/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ReportHandler contains handlers for disk report endpoints
type ReportHandler struct {
	config  *config.Config
	monitor *smart.Monitor
}

// NewReportHandler creates a new report handler
func NewReportHandler(cfg *config.Config, monitor *smart.Monitor) *ReportHandler {
	return &ReportHandler{
		config:  cfg,
		monitor: monitor,
	}
}

// GetReport returns the most recent disk report without triggering a new
// check. Checks are expensive (each one raises an elevation prompt on the
// host), so on-demand runs go through RefreshReport instead.
func (h *ReportHandler) GetReport(c *gin.Context) {
	rep := h.monitor.GetLastReport()
	if rep == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "pending",
			"message": "No disk report is available yet",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"report": rep,
	})
}

// RefreshReport runs a disk health check now and returns the fresh report
func (h *ReportHandler) RefreshReport(c *gin.Context) {
	rep, err := h.monitor.RunNow(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, checker.ErrElevationDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Elevation was denied on the host",
				"error":   err.Error(),
			})
		case errors.Is(err, checker.ErrNoReport):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "error",
				"message": "CrystalDiskInfo produced no report",
				"error":   err.Error(),
			})
		case errors.Is(err, checker.ErrUnsupported):
			c.JSON(http.StatusNotImplemented, gin.H{
				"status":  "error",
				"message": "Disk health checks require Windows",
				"error":   err.Error(),
			})
		case strings.Contains(err.Error(), "already in progress"):
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "A disk health check is already in progress",
			})
		default:
			HandleError(c, err)
		}
		return
	}

	logger.Info("On-demand disk health check completed",
		logger.Int("disks", len(rep.Disks)),
		logger.Int("alerts", rep.Alerts),
		logger.String("client_ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"report": rep,
	})
}

// GetVolumes handles requests for mounted volume usage information
func (h *ReportHandler) GetVolumes(c *gin.Context) {
	volumeInfos, totalStorage, err := volumes.GetVolumeInfo()
	if err != nil {
		logger.Error("Failed to get volume information",
			logger.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get volume information",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"volumes":       volumeInfos,
		"total_storage": totalStorage,
	})
}
