package report

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	intRe           = regexp.MustCompile(`-?\d+`)
	floatRe         = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)
	percentRe       = regexp.MustCompile(`(\d{1,3})\s*%`)
	sizeRe          = regexp.MustCompile(`(?i)([0-9][0-9\s.,]*)\s*(B|KB|MB|GB|TB|PB)\b`)
	tempRe          = regexp.MustCompile(`(?i)(-?\d+)\s*C\b`)
	rpmRe           = regexp.MustCompile(`(?i)(\d+)\s*RPM`)
	diskListEntryRe = regexp.MustCompile(`^\s*\(\d{1,3}\)\s+.+?:\s+`)
	diskHeaderRe    = regexp.MustCompile(`^\s*\((\d{1,3})\)\s+(.+?)\s*$`)
	keyValueRe      = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9 #/_().+-]{1,60})\s*:\s*(.+?)\s*$`)
)

var (
	healthGoodKeywords = []string{"good", "healthy", "ok"}
	healthWarnKeywords = []string{"caution", "warning", "degraded"}
	healthBadKeywords  = []string{"bad", "failed", "critical", "error"}
)

var sizeMultipliers = map[string]uint64{
	"B":  1,
	"KB": 1000,
	"MB": 1000 * 1000,
	"GB": 1000 * 1000 * 1000,
	"TB": 1000 * 1000 * 1000 * 1000,
	"PB": 1000 * 1000 * 1000 * 1000 * 1000,
}

// LooksLikeReport reports whether text is a CrystalDiskInfo dump: it must
// mention the tool name and contain at least one "(N) Model" disk header.
func LooksLikeReport(text string) bool {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return false
	}
	if !strings.Contains(raw, "CrystalDiskInfo") {
		return false
	}
	for _, line := range strings.Split(raw, "\n") {
		if diskHeaderRe.MatchString(strings.TrimRight(line, "\r")) {
			return true
		}
	}
	return false
}

// ParseEntries parses a CrystalDiskInfo text dump into per-disk entries,
// in dump order. Sections without a usable model name are dropped.
func ParseEntries(text string) []DiskEntry {
	var entries []DiskEntry
	for _, section := range splitDiskSections(text) {
		entry := buildEntry(section)
		if entry.Model != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// section is a raw disk block: the "(N) Model" header plus its lines.
type section struct {
	number int
	header string
	lines  []string
}

// splitDiskSections cuts the dump at disk headers. Single-line disk list
// entries near the top of the dump also match the header shape but carry a
// ": value" tail, so they are filtered out first.
func splitDiskSections(text string) []section {
	var sections []section
	var current *section

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimRight(rawLine, " \t\r")
		if diskListEntryRe.MatchString(line) {
			continue
		}

		if m := diskHeaderRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			number, _ := strconv.Atoi(m[1])
			current = &section{
				number: number,
				header: strings.TrimSpace(m[2]),
			}
			continue
		}

		if current != nil {
			current.lines = append(current.lines, line)
		}
	}

	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}

// parseSectionProperties extracts key/value pairs in order. The first
// occurrence of a key wins; lookups are case-insensitive.
func parseSectionProperties(lines []string) (map[string]string, []Property) {
	values := make(map[string]string)
	var ordered []Property
	for _, line := range lines {
		m := keyValueRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		keyDisplay := strings.TrimSpace(m[1])
		key := strings.ToLower(keyDisplay)
		value := strings.TrimSpace(m[2])
		if key == "" || value == "" {
			continue
		}
		if _, seen := values[key]; seen {
			continue
		}
		values[key] = value
		ordered = append(ordered, Property{Key: keyDisplay, Value: value})
	}
	return values, ordered
}

func buildEntry(s section) DiskEntry {
	values, ordered := parseSectionProperties(s.lines)

	model := firstNonEmpty(values["model"], s.header)
	interfaceText := values["interface"]
	rotationText := values["rotation rate"]

	healthStatus := firstNonEmpty(values["health status"], "Unknown")
	healthPercent := parseHealthPercent(healthStatus)
	healthCode := parseHealthCode(healthStatus, healthPercent)
	temperature := parseTemperature(values["temperature"])
	powerOnHours := toInt(values["power on hours"])

	var wear *int
	if healthPercent != nil {
		w := clampPercent(100 - *healthPercent)
		wear = &w
	}

	return DiskEntry{
		Number:        s.number,
		Model:         model,
		SerialNumber:  values["serial number"],
		SizeBytes:     parseSizeBytes(values["disk size"]),
		Interface:     interfaceText,
		MediaType:     inferMediaType(interfaceText, rotationText, model),
		HealthStatus:  healthStatus,
		HealthPercent: healthPercent,
		HealthCode:    healthCode,
		Temperature:   temperature,
		Wear:          wear,
		PowerOnHours:  powerOnHours,
		Properties:    ordered,
	}
}

// toInt extracts the first integer found in text, nil if there is none.
func toInt(text string) *int {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if v, err := strconv.Atoi(text); err == nil {
		return &v
	}
	m := intRe.FindString(text)
	if m == "" {
		return nil
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &v
}

// toFloat extracts the first decimal number found in text. Decimal commas
// are accepted since the tool follows the system locale.
func toFloat(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	m := floatRe.FindString(text)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}

// parseSizeBytes parses "931.5 GB" style values, 0 if absent or malformed.
func parseSizeBytes(text string) uint64 {
	m := sizeRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0
	}
	value, ok := toFloat(m[1])
	if !ok {
		return 0
	}
	multiplier, ok := sizeMultipliers[strings.ToUpper(m[2])]
	if !ok {
		return 0
	}
	return uint64(value * float64(multiplier))
}

// parseTemperature accepts "41 C (105 F)" style values. Readings outside
// -40..150 are sensor garbage and dropped.
func parseTemperature(text string) *int {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var temp *int
	if m := tempRe.FindStringSubmatch(text); m != nil {
		temp = toInt(m[1])
	} else {
		temp = toInt(text)
	}
	if temp == nil || *temp < -40 || *temp > 150 {
		return nil
	}
	return temp
}

// parseHealthPercent maps a health status like "Good (98 %)" to a percent.
// Without an explicit percentage the keyword tables map bad/warn/good
// statuses to 0/50/100.
func parseHealthPercent(statusText string) *int {
	text := strings.TrimSpace(statusText)
	if text == "" {
		return nil
	}
	if m := percentRe.FindStringSubmatch(text); m != nil {
		if v := toInt(m[1]); v != nil {
			p := clampPercent(*v)
			return &p
		}
	}

	lowered := strings.ToLower(text)
	if containsAny(lowered, healthBadKeywords) {
		p := 0
		return &p
	}
	if containsAny(lowered, healthWarnKeywords) {
		p := 50
		return &p
	}
	if containsAny(lowered, healthGoodKeywords) {
		p := 100
		return &p
	}
	return nil
}

func parseHealthCode(statusText string, healthPercent *int) HealthCode {
	lowered := strings.ToLower(strings.TrimSpace(statusText))
	if lowered != "" {
		if containsAny(lowered, healthBadKeywords) {
			return HealthCodeBad
		}
		if containsAny(lowered, healthWarnKeywords) {
			return HealthCodeWarning
		}
		if containsAny(lowered, healthGoodKeywords) {
			return HealthCodeGood
		}
	}
	if healthPercent == nil {
		return HealthCodeUnknown
	}
	if *healthPercent >= 80 {
		return HealthCodeGood
	}
	return HealthCodeWarning
}

func parseRotationRate(text string) *int {
	m := rpmRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil
	}
	return toInt(m[1])
}

// inferMediaType guesses HDD/SSD from the rotation rate, falling back to
// interface and model hints. "no data" mirrors the tool's own wording.
func inferMediaType(interfaceText, rotationText, model string) string {
	if rotation := parseRotationRate(rotationText); rotation != nil && *rotation > 0 {
		return "HDD (" + strconv.Itoa(*rotation) + " RPM)"
	}

	combined := strings.ToUpper(interfaceText + " " + model)
	if strings.Contains(combined, "NVME") ||
		strings.Contains(combined, "NVM EXPRESS") ||
		strings.Contains(combined, "SSD") {
		return "SSD"
	}
	return "no data"
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
