package report

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// IsAlert reports whether a disk should be flagged: health below the
// minimum, a warning/bad health status, or temperature at or above the
// maximum.
func IsAlert(entry DiskEntry, t Thresholds) bool {
	if entry.HealthPercent != nil && *entry.HealthPercent < t.MinHealthPercent {
		return true
	}
	if entry.HealthCode == HealthCodeWarning || entry.HealthCode == HealthCodeBad {
		return true
	}
	if entry.Temperature != nil && *entry.Temperature >= t.MaxTemperature {
		return true
	}
	return false
}

// Build renders the parsed entries into a displayable report. Entries are
// ordered by disk number; every property the tool reported is included.
func Build(entries []DiskEntry, t Thresholds) *Report {
	now := time.Now()
	if len(entries) == 0 {
		return &Report{
			Summary:   "No physical disks were detected.",
			Details:   "The report did not contain any physical disks.",
			Timestamp: now,
		}
	}

	sorted := make([]DiskEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})

	alerts := 0
	blocks := make([]string, 0, len(sorted))
	for _, entry := range sorted {
		alert := IsAlert(entry, t)
		if alert {
			alerts++
		}

		stateLabel := "OK"
		if alert {
			stateLabel = "ALERT"
		}

		healthText := "no data"
		if entry.HealthPercent != nil {
			healthText = fmt.Sprintf("%d%%", *entry.HealthPercent)
		}
		temperatureText := "no data"
		if entry.Temperature != nil {
			temperatureText = fmt.Sprintf("%d C", *entry.Temperature)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "[%s] Disk %d: %s\n", stateLabel, entry.Number, displayValue(entry.Model))
		fmt.Fprintf(&b, "  Health: %s\n", healthText)
		fmt.Fprintf(&b, "  Temperature: %s", temperatureText)
		for _, p := range entry.Properties {
			fmt.Fprintf(&b, "\n  %s: %s", p.Key, p.Value)
		}
		blocks = append(blocks, b.String())
	}

	healthy := len(sorted) - alerts
	return &Report{
		Summary:   fmt.Sprintf("Disks: %d. Healthy: %d. Alerts: %d.", len(sorted), healthy, alerts),
		Details:   strings.Join(blocks, "\n\n"),
		Disks:     sorted,
		Healthy:   healthy,
		Alerts:    alerts,
		Timestamp: now,
	}
}

// HasAlerts reports whether any disk in the report is in alert state.
func (r *Report) HasAlerts() bool {
	return r.Alerts > 0
}

// FormatBytes converts bytes to a human-readable string
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func displayValue(text string) string {
	if t := strings.TrimSpace(text); t != "" {
		return t
	}
	return "no data"
}
