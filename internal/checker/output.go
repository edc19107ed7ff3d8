package checker

import (
	"bytes"
	"context"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"CheckDiskGo/internal/report"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeReportBytes decodes a DiskInfo.txt dump. The tool writes UTF-8 with
// BOM on recent versions, UTF-16 on some localized builds, so decoding is
// BOM-driven with a UTF-16LE fallback for BOM-less UTF-16 files.
func decodeReportBytes(data []byte) string {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
	if err == nil && utf8.Valid(decoded) {
		return string(decoded)
	}

	if !utf8.Valid(data) {
		utf16Decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		if decoded, _, err := transform.Bytes(utf16Decoder, data); err == nil && utf8.Valid(decoded) {
			return string(decoded)
		}
	}

	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// outputWatcher polls the two redundant output channels, the report file
// and the clipboard, until a fresh CrystalDiskInfo report appears. "Fresh"
// means different from the pre-run snapshots, so a stale report left behind
// by an earlier run is never accepted.
type outputWatcher struct {
	path          string
	previousData  []byte
	prevClipboard string
	pollInterval  time.Duration
}

// ready returns the report text if either channel holds one right now.
func (w *outputWatcher) ready() (string, bool) {
	if text, ok := w.fileReady(); ok {
		return text, true
	}
	return w.clipboardReady()
}

func (w *outputWatcher) fileReady() (string, bool) {
	data, err := os.ReadFile(w.path)
	if err != nil || len(data) == 0 {
		return "", false
	}
	text := decodeReportBytes(data)
	if !report.LooksLikeReport(text) {
		return "", false
	}
	if len(w.previousData) > 0 && bytes.Equal(data, w.previousData) {
		return "", false
	}
	return text, true
}

func (w *outputWatcher) clipboardReady() (string, bool) {
	current, ok := readClipboardText()
	if !ok || current == "" {
		return "", false
	}
	if w.prevClipboard != "" && current == w.prevClipboard {
		return "", false
	}
	if !report.LooksLikeReport(current) {
		return "", false
	}
	return current, true
}

// wait polls both channels until a report appears or the deadline passes.
// One final check runs after the deadline so a report that landed during
// the last poll interval is not lost.
func (w *outputWatcher) wait(ctx context.Context, timeout time.Duration) (string, bool) {
	if timeout < time.Second {
		timeout = time.Second
	}
	deadline := time.Now().Add(timeout)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		if text, ok := w.ready(); ok {
			return text, true
		}
		select {
		case <-ctx.Done():
			return "", false
		case <-ticker.C:
		}
	}
	return w.ready()
}
