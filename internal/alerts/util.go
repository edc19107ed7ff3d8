package alerts

import (
	"fmt"
	"time"

	"CheckDiskGo/internal/pkg/logger"

	"github.com/shirou/gopsutil/host"
)

// GetHostInfoForAlert retrieves host information for inclusion in alerts
func GetHostInfoForAlert() *HostInfo {
	info, err := host.Info()
	if err != nil {
		logger.Error("Failed to get host information for alert",
			logger.String("error", err.Error()))
		return nil
	}

	return &HostInfo{
		Hostname:        info.Hostname,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		Uptime:          formatUptime(info.Uptime),
	}
}

func formatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
