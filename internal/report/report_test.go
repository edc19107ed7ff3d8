package report

import (
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestIsAlert(t *testing.T) {
	thresholds := Thresholds{MinHealthPercent: 80, MaxTemperature: 60}

	tests := []struct {
		name  string
		entry DiskEntry
		want  bool
	}{
		{
			name: "healthy disk",
			entry: DiskEntry{
				HealthPercent: intPtr(98),
				HealthCode:    HealthCodeGood,
				Temperature:   intPtr(40),
			},
			want: false,
		},
		{
			name: "low health percent",
			entry: DiskEntry{
				HealthPercent: intPtr(70),
				HealthCode:    HealthCodeGood,
			},
			want: true,
		},
		{
			name: "warning status",
			entry: DiskEntry{
				HealthPercent: intPtr(90),
				HealthCode:    HealthCodeWarning,
			},
			want: true,
		},
		{
			name: "bad status",
			entry: DiskEntry{
				HealthCode: HealthCodeBad,
			},
			want: true,
		},
		{
			name: "temperature at threshold",
			entry: DiskEntry{
				HealthPercent: intPtr(100),
				HealthCode:    HealthCodeGood,
				Temperature:   intPtr(60),
			},
			want: true,
		},
		{
			name: "no data at all",
			entry: DiskEntry{
				HealthCode: HealthCodeUnknown,
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAlert(tt.entry, thresholds); got != tt.want {
				t.Errorf("IsAlert() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	rep := Build(nil, DefaultThresholds())
	if rep.Summary != "No physical disks were detected." {
		t.Errorf("summary = %q", rep.Summary)
	}
	if rep.HasAlerts() {
		t.Error("empty report should have no alerts")
	}
}

func TestBuildOrdersAndCounts(t *testing.T) {
	entries := []DiskEntry{
		{
			Number:        2,
			Model:         "Drive B",
			HealthCode:    HealthCodeWarning,
			HealthPercent: intPtr(50),
			Properties:    []Property{{Key: "Model", Value: "Drive B"}},
		},
		{
			Number:        1,
			Model:         "Drive A",
			HealthCode:    HealthCodeGood,
			HealthPercent: intPtr(100),
			Temperature:   intPtr(35),
			Properties:    []Property{{Key: "Model", Value: "Drive A"}},
		},
	}

	rep := Build(entries, DefaultThresholds())

	if rep.Summary != "Disks: 2. Healthy: 1. Alerts: 1." {
		t.Errorf("summary = %q", rep.Summary)
	}
	if rep.Disks[0].Number != 1 || rep.Disks[1].Number != 2 {
		t.Errorf("disks not sorted by number: %d, %d",
			rep.Disks[0].Number, rep.Disks[1].Number)
	}
	if !rep.HasAlerts() {
		t.Error("report should have alerts")
	}

	indexA := strings.Index(rep.Details, "[OK] Disk 1: Drive A")
	indexB := strings.Index(rep.Details, "[ALERT] Disk 2: Drive B")
	if indexA < 0 || indexB < 0 {
		t.Fatalf("details missing disk blocks:\n%s", rep.Details)
	}
	if indexA > indexB {
		t.Error("disk 1 should come before disk 2 in details")
	}
	if !strings.Contains(rep.Details, "Temperature: 35 C") {
		t.Errorf("details missing temperature line:\n%s", rep.Details)
	}
	if !strings.Contains(rep.Details, "Temperature: no data") {
		t.Errorf("details missing no-data temperature line:\n%s", rep.Details)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1024 * 1024, "1.0 MB"},
		{uint64(1.5 * 1024 * 1024 * 1024), "1.5 GB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.bytes); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
