package checker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
	"unicode/utf16"
)

const sampleReport = `CrystalDiskInfo 9.1.1
 (1) Test Drive
           Model : Test Drive
   Health Status : Good (100 %)
`

const otherReport = `CrystalDiskInfo 9.1.1
 (2) Other Drive
           Model : Other Drive
   Health Status : Good (95 %)
`

func utf16LEBytes(s string, withBOM bool) []byte {
	var out []byte
	if withBOM {
		out = append(out, 0xFF, 0xFE)
	}
	for _, u := range utf16.Encode([]rune(s)) {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}

func TestDecodeReportBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"plain utf8", []byte(sampleReport)},
		{"utf8 with bom", append([]byte{0xEF, 0xBB, 0xBF}, []byte(sampleReport)...)},
		{"utf16le with bom", utf16LEBytes(sampleReport, true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeReportBytes(tt.data)
			if got != sampleReport {
				t.Errorf("decoded text mismatch:\n%q\nwant:\n%q", got, sampleReport)
			}
		})
	}
}

func TestFileReadyFreshness(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, outputFileName)

	w := &outputWatcher{path: path, pollInterval: 10 * time.Millisecond}

	// No file yet
	if _, ok := w.fileReady(); ok {
		t.Error("fileReady should fail with no file present")
	}

	// A valid report appears
	if err := os.WriteFile(path, []byte(sampleReport), 0644); err != nil {
		t.Fatal(err)
	}
	text, ok := w.fileReady()
	if !ok {
		t.Fatal("fileReady should succeed with a fresh report")
	}
	if text != sampleReport {
		t.Errorf("fileReady text = %q", text)
	}

	// The same bytes as the pre-run snapshot must be rejected as stale
	w.previousData = []byte(sampleReport)
	if _, ok := w.fileReady(); ok {
		t.Error("fileReady should reject bytes identical to the stale snapshot")
	}

	// Different content is fresh again
	if err := os.WriteFile(path, []byte(otherReport), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := w.fileReady(); !ok {
		t.Error("fileReady should accept content that differs from the snapshot")
	}
}

func TestFileReadyRejectsNonReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, outputFileName)
	if err := os.WriteFile(path, []byte("not a disk report"), 0644); err != nil {
		t.Fatal(err)
	}

	w := &outputWatcher{path: path, pollInterval: 10 * time.Millisecond}
	if _, ok := w.fileReady(); ok {
		t.Error("fileReady should reject content that is not a CrystalDiskInfo dump")
	}
}

func TestWaitReturnsImmediatelyWhenReady(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, outputFileName)
	if err := os.WriteFile(path, []byte(sampleReport), 0644); err != nil {
		t.Fatal(err)
	}

	w := &outputWatcher{path: path, pollInterval: 10 * time.Millisecond}

	start := time.Now()
	text, ok := w.wait(context.Background(), 5*time.Second)
	if !ok {
		t.Fatal("wait should find the report")
	}
	if text != sampleReport {
		t.Errorf("wait text = %q", text)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("wait took %v for an already-present report", elapsed)
	}
}

func TestWaitHonorsContextCancel(t *testing.T) {
	dir := t.TempDir()
	w := &outputWatcher{
		path:         filepath.Join(dir, outputFileName),
		pollInterval: 10 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	if _, ok := w.wait(ctx, 30*time.Second); ok {
		t.Error("wait should fail when cancelled")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("wait did not respect cancellation, took %v", elapsed)
	}
}
