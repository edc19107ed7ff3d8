package smart

import (
	"fmt"
	"strings"

	"CheckDiskGo/internal/alerts"
	"CheckDiskGo/internal/report"
)

// AlertHandler handles disk health alerts
type AlertHandler struct {
	monitor *Monitor
	handler *alerts.Handler
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(monitor *Monitor) *AlertHandler {
	return &AlertHandler{
		monitor: monitor,
		handler: alerts.NewHandler(monitor, nil),
	}
}

// HandleAlert sends a notification for a report that contains alerting disks
func (a *AlertHandler) HandleAlert(rep *report.Report, statusChanged bool) {
	counter := &a.handler.SuppressedCriticalCount
	if a.handler.ShouldThrottleAlert(statusChanged, counter, alerts.AlertTypeCritical) {
		return
	}

	hostInfo := alerts.GetHostInfoForAlert()
	tableContent := a.createReportTableContent(rep, alerts.AlertTypeCritical)

	additionalContent := `
	<div style="background-color: #d9534f; color: white; padding: 10px; text-align: center; margin: 20px 0;">
		<h3>DISK FAILURE RISK - BACK UP YOUR DATA</h3>
	</div>
	<p><b>Recommendation:</b> Review the SMART details of the flagged disks and
	replace any drive reporting a Caution or Bad health status.</p>`

	style := a.handler.GetAlertStyle(alerts.AlertTypeCritical)
	message := alerts.CreateAlertHTML(
		alerts.AlertTypeCritical,
		style,
		"DISK HEALTH ALERT",
		statusChanged,
		tableContent,
		hostInfo,
		additionalContent,
	)

	a.handler.SendNotifications(
		fmt.Sprintf("Disk Health Alert (%d of %d disks)", rep.Alerts, len(rep.Disks)),
		message)
}

// HandleNormal sends a recovery notification when all disks return to a
// healthy state. Nothing is sent unless the status actually changed.
func (a *AlertHandler) HandleNormal(rep *report.Report, statusChanged bool) {
	if !statusChanged {
		return
	}

	hostInfo := alerts.GetHostInfoForAlert()
	tableContent := a.createReportTableContent(rep, alerts.AlertTypeNormal)

	additionalContent := `
	<div style="background-color: #dff0d8; color: #3c763d; padding: 10px; margin: 20px 0; text-align: center; border-radius: 5px;">
		<p>All disks are reporting a healthy status again.</p>
	</div>`

	style := a.handler.GetAlertStyle(alerts.AlertTypeNormal)
	message := alerts.CreateAlertHTML(
		alerts.AlertTypeNormal,
		style,
		"DISK HEALTH NORMALIZED",
		statusChanged,
		tableContent,
		hostInfo,
		additionalContent,
	)

	a.handler.SendNotifications("Disk Health Normalized", message)
}

// createReportTableContent builds the per-disk HTML for an alert email
func (a *AlertHandler) createReportTableContent(rep *report.Report, alertType alerts.AlertType) string {
	style := a.handler.GetAlertStyle(alertType)
	var b strings.Builder

	b.WriteString(alerts.CreateStatusLine(style.StatusColorClass, style.StatusText))
	b.WriteString(fmt.Sprintf("<p>%s</p>", rep.Summary))

	thresholds := a.monitor.checker.Thresholds()
	for _, disk := range rep.Disks {
		if alertType != alerts.AlertTypeNormal && !report.IsAlert(disk, thresholds) {
			continue
		}

		rows := []alerts.TableRow{
			{Label: "Health Status", Value: healthCell(disk)},
			{Label: "Temperature", Value: temperatureCell(disk)},
			{Label: "Size", Value: report.FormatBytes(disk.SizeBytes)},
			{Label: "Interface", Value: disk.Interface},
			{Label: "Media Type", Value: disk.MediaType},
		}
		if disk.SerialNumber != "" {
			rows = append(rows, alerts.TableRow{Label: "Serial Number", Value: disk.SerialNumber})
		}
		if disk.PowerOnHours != nil {
			rows = append(rows, alerts.TableRow{
				Label: "Power On Hours",
				Value: fmt.Sprintf("%d", *disk.PowerOnHours),
			})
		}

		b.WriteString(fmt.Sprintf(`<div class="section"><h3 class="section-title">Disk %d: %s</h3>`,
			disk.Number, disk.Model))
		b.WriteString(alerts.CreateTable(rows))
		b.WriteString(`</div>`)
	}

	return b.String()
}

func healthCell(disk report.DiskEntry) string {
	status := disk.HealthStatus
	if status == "" {
		status = "no data"
	}
	if disk.HealthPercent != nil {
		return fmt.Sprintf("%s (%d%%)", status, *disk.HealthPercent)
	}
	return status
}

func temperatureCell(disk report.DiskEntry) string {
	if disk.Temperature == nil {
		return "no data"
	}
	return fmt.Sprintf("%d C", *disk.Temperature)
}
