package report

import (
	"strings"
	"testing"
)

const sampleDump = `CrystalDiskInfo 9.1.1 (C) 2008-2023 hiyohiyo
                                Crystal Dew World: https://crystalmark.info/

-- Disk List ---------------------------------------------------------------
 (1) Samsung SSD 970 EVO 1TB : 1000.2 GB [0/0/0, pd1] - sm
 (2) WDC WD10EZEX-08WN4A0 : 1000.2 GB [1/0/0, pd1]

----------------------------------------------------------------------------
 (1) Samsung SSD 970 EVO 1TB
----------------------------------------------------------------------------
           Model : Samsung SSD 970 EVO 1TB
        Firmware : 2B2QEXE7
   Serial Number : S467NF0M123456
       Disk Size : 1000.2 GB (8.4/137.4/1000.2/1000.2)
       Interface : NVM Express
   Health Status : Good (98 %)
     Temperature : 41 C (105 F)
  Power On Hours : 3456 hours
           Model : Duplicate Entry Should Be Ignored

----------------------------------------------------------------------------
 (2) WDC WD10EZEX-08WN4A0
----------------------------------------------------------------------------
           Model : WDC WD10EZEX-08WN4A0
   Serial Number : WD-WCC6Y5XXXXXX
       Disk Size : 1000 GB
       Interface : Serial ATA
   Rotation Rate : 7200 RPM
   Health Status : Caution
`

func TestParseEntriesBasic(t *testing.T) {
	entries := ParseEntries(sampleDump)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Number != 1 {
		t.Errorf("first entry number = %d, want 1", first.Number)
	}
	if first.Model != "Samsung SSD 970 EVO 1TB" {
		t.Errorf("first entry model = %q", first.Model)
	}
	if first.SerialNumber != "S467NF0M123456" {
		t.Errorf("first entry serial = %q", first.SerialNumber)
	}
	if first.Interface != "NVM Express" {
		t.Errorf("first entry interface = %q", first.Interface)
	}
	if first.MediaType != "SSD" {
		t.Errorf("first entry media type = %q, want SSD", first.MediaType)
	}
	if first.HealthPercent == nil || *first.HealthPercent != 98 {
		t.Errorf("first entry health percent = %v, want 98", first.HealthPercent)
	}
	if first.HealthCode != HealthCodeGood {
		t.Errorf("first entry health code = %v, want good", first.HealthCode)
	}
	if first.Temperature == nil || *first.Temperature != 41 {
		t.Errorf("first entry temperature = %v, want 41", first.Temperature)
	}
	if first.PowerOnHours == nil || *first.PowerOnHours != 3456 {
		t.Errorf("first entry power on hours = %v, want 3456", first.PowerOnHours)
	}

	second := entries[1]
	if second.Number != 2 {
		t.Errorf("second entry number = %d, want 2", second.Number)
	}
	if second.MediaType != "HDD (7200 RPM)" {
		t.Errorf("second entry media type = %q", second.MediaType)
	}
	if second.SizeBytes != 1000*1000*1000*1000 {
		t.Errorf("second entry size = %d", second.SizeBytes)
	}
	if second.HealthCode != HealthCodeWarning {
		t.Errorf("second entry health code = %v, want warning", second.HealthCode)
	}
	if second.HealthPercent == nil || *second.HealthPercent != 50 {
		t.Errorf("second entry health percent = %v, want 50 for Caution", second.HealthPercent)
	}
	if second.Temperature != nil {
		t.Errorf("second entry temperature = %v, want nil", second.Temperature)
	}
}

func TestParseEntriesPropertyOrderAndFirstWins(t *testing.T) {
	entries := ParseEntries(sampleDump)
	props := entries[0].Properties

	var keys []string
	for _, p := range props {
		keys = append(keys, p.Key)
	}
	wantOrder := []string{
		"Model", "Firmware", "Serial Number", "Disk Size",
		"Interface", "Health Status", "Temperature", "Power On Hours",
	}
	if len(keys) != len(wantOrder) {
		t.Fatalf("got %d properties %v, want %d", len(keys), keys, len(wantOrder))
	}
	for i, want := range wantOrder {
		if keys[i] != want {
			t.Errorf("property[%d] = %q, want %q", i, keys[i], want)
		}
	}

	// Duplicate "Model" line must not override the first occurrence
	if props[0].Value != "Samsung SSD 970 EVO 1TB" {
		t.Errorf("model value = %q, duplicate should have been ignored", props[0].Value)
	}
}

func TestParseEntriesSkipsDiskList(t *testing.T) {
	// The disk list lines at the top match the header shape but carry a
	// ": value" tail; they must not produce entries of their own.
	entries := ParseEntries(sampleDump)
	for _, e := range entries {
		if strings.Contains(e.Model, "[") {
			t.Errorf("disk list entry leaked into results: %q", e.Model)
		}
	}
}

func TestParseEntriesAbsentFields(t *testing.T) {
	dump := `CrystalDiskInfo 9.1.1
 (1) Mystery Drive
           Model : Mystery Drive
`
	entries := ParseEntries(dump)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.HealthStatus != "Unknown" {
		t.Errorf("health status = %q, want Unknown", e.HealthStatus)
	}
	if e.HealthCode != HealthCodeUnknown {
		t.Errorf("health code = %v, want unknown", e.HealthCode)
	}
	if e.HealthPercent != nil || e.Temperature != nil || e.PowerOnHours != nil {
		t.Errorf("absent fields should be nil: %v %v %v",
			e.HealthPercent, e.Temperature, e.PowerOnHours)
	}
	if e.SizeBytes != 0 {
		t.Errorf("size = %d, want 0", e.SizeBytes)
	}
	if e.MediaType != "no data" {
		t.Errorf("media type = %q, want no data", e.MediaType)
	}
}

func TestParseEntriesBogusTemperature(t *testing.T) {
	dump := `CrystalDiskInfo 9.1.1
 (1) Hot Drive
           Model : Hot Drive
     Temperature : 999 C
`
	entries := ParseEntries(dump)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Temperature != nil {
		t.Errorf("out-of-range temperature should be dropped, got %v", *entries[0].Temperature)
	}
}

func TestLooksLikeReport(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"whitespace", "  \r\n  ", false},
		{"random text", "hello world", false},
		{"tool name without headers", "CrystalDiskInfo 9.1.1", false},
		{"header without tool name", " (1) Some Drive\nModel : Some Drive", false},
		{"full dump", sampleDump, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeReport(tt.text); got != tt.want {
				t.Errorf("LooksLikeReport() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseHealthPercentKeywords(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{"Good", 100},
		{"Healthy", 100},
		{"Caution", 50},
		{"Warning", 50},
		{"Bad", 0},
		{"Failed", 0},
		{"Good (97 %)", 97},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := parseHealthPercent(tt.status)
			if got == nil || *got != tt.want {
				t.Errorf("parseHealthPercent(%q) = %v, want %d", tt.status, got, tt.want)
			}
		})
	}

	if got := parseHealthPercent("Unknown"); got != nil {
		t.Errorf("parseHealthPercent(Unknown) = %v, want nil", *got)
	}
}
