package report

import "time"

// HealthCode classifies a disk's reported health status.
type HealthCode int

const (
	HealthCodeGood    HealthCode = 0
	HealthCodeWarning HealthCode = 1
	HealthCodeBad     HealthCode = 2
	HealthCodeUnknown HealthCode = -1
)

// Property is a single key/value pair as reported by CrystalDiskInfo,
// preserving the original key casing and dump order.
type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DiskEntry is the parsed record for one physical disk. Optional numeric
// fields are pointers: nil means the tool did not report them.
type DiskEntry struct {
	Number        int        `json:"number"`
	Model         string     `json:"model"`
	SerialNumber  string     `json:"serial_number,omitempty"`
	SizeBytes     uint64     `json:"size_bytes,omitempty"`
	Interface     string     `json:"interface,omitempty"`
	MediaType     string     `json:"media_type,omitempty"`
	HealthStatus  string     `json:"health_status"`
	HealthPercent *int       `json:"health_percent,omitempty"`
	HealthCode    HealthCode `json:"health_code"`
	Temperature   *int       `json:"temperature,omitempty"`
	Wear          *int       `json:"wear,omitempty"`
	PowerOnHours  *int       `json:"power_on_hours,omitempty"`
	Properties    []Property `json:"properties"`
}

// Report is the displayable result of one disk check.
type Report struct {
	Summary   string      `json:"summary"`
	Details   string      `json:"details"`
	Disks     []DiskEntry `json:"disks"`
	Healthy   int         `json:"healthy"`
	Alerts    int         `json:"alerts"`
	Timestamp time.Time   `json:"timestamp"`
}

// Thresholds define when a disk counts as an alert.
type Thresholds struct {
	// MinHealthPercent is the lowest health percentage still considered
	// healthy. MaxTemperature is the highest temperature (Celsius) still
	// considered healthy; at or above it the disk is flagged.
	MinHealthPercent int
	MaxTemperature   int
}

// DefaultThresholds match CrystalDiskInfo's caution semantics.
func DefaultThresholds() Thresholds {
	return Thresholds{MinHealthPercent: 80, MaxTemperature: 60}
}
