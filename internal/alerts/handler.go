package alerts

import (
	"fmt"
	"time"

	"CheckDiskGo/internal/pkg/logger"
)

// Handler handles generic alerts with throttling and notification logic
type Handler struct {
	config                  ConfigProvider
	alertStyles             map[AlertType]AlertStyle
	SuppressedWarningCount  int
	SuppressedCriticalCount int
	suppressLogFrequency    int
}

// NewHandler creates a new alert handler
func NewHandler(config ConfigProvider, styles map[AlertType]AlertStyle) *Handler {
	if styles == nil {
		styles = DefaultStyles()
	}

	return &Handler{
		config:               config,
		alertStyles:          styles,
		suppressLogFrequency: 60,
	}
}

// ShouldThrottleAlert determines if alert notifications should be throttled.
// Status change alerts are never throttled.
func (h *Handler) ShouldThrottleAlert(statusChanged bool, counter *int, alertType AlertType) bool {
	throttlingEnabled := false
	cooldownPeriod := 300

	if cfgProvider, ok := h.config.(interface {
		IsThrottlingEnabled() bool
		GetThrottlingCooldownPeriod() int
	}); ok {
		throttlingEnabled = cfgProvider.IsThrottlingEnabled()
		cooldownPeriod = cfgProvider.GetThrottlingCooldownPeriod()
	}

	if statusChanged || !throttlingEnabled {
		*counter = 0
		return false
	}

	cooldownDuration := time.Duration(cooldownPeriod) * time.Second
	if time.Since(h.config.GetLastAlertTime()) < cooldownDuration {
		*counter++
		if *counter%h.suppressLogFrequency == 1 {
			logger.Debug(fmt.Sprintf("Suppressing %s notifications due to cooldown period", alertType),
				logger.Int("suppressed_count", *counter))
		}
		return true
	}

	*counter = 0
	return false
}

// GetAlertStyle returns the style for a specific alert type
func (h *Handler) GetAlertStyle(alertType AlertType) AlertStyle {
	if style, ok := h.alertStyles[alertType]; ok {
		return style
	}
	return h.alertStyles[AlertTypeWarning]
}

// SendNotifications sends alerts through configured channels
func (h *Handler) SendNotifications(title, message string) {
	emailManager := h.config.GetNotificationManagers()

	if err := emailManager.SendEmail(title, message); err != nil {
		logger.Error("Failed to send Email notification",
			logger.String("error", err.Error()))
		return
	}
	h.config.UpdateLastAlertTime()
}
