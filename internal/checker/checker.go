// Package checker orchestrates an elevated, hidden-window run of the
// bundled CrystalDiskInfo executable and captures its text report. All
// SMART analysis happens inside that external binary; this package only
// launches it, collects its output and hands the text to the report parser.
package checker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"CheckDiskGo/internal/pkg/config"
	"CheckDiskGo/internal/pkg/logger"
	"CheckDiskGo/internal/report"
)

// copyExitFlag makes CrystalDiskInfo dump its report to DiskInfo.txt and
// the clipboard, then exit without showing a window.
const copyExitFlag = "/CopyExit"

// outputFileName is the report file the tool writes next to its executable.
const outputFileName = "DiskInfo.txt"

// Checker runs disk health checks against the configured CrystalDiskInfo
// bundle. It is safe for concurrent use; each Run is independent.
type Checker struct {
	cfg *config.Config
}

// New creates a checker bound to the given configuration.
func New(cfg *config.Config) *Checker {
	return &Checker{cfg: cfg}
}

// Thresholds returns the alert thresholds from configuration.
func (c *Checker) Thresholds() report.Thresholds {
	return report.Thresholds{
		MinHealthPercent: c.cfg.Monitoring.Smart.MinHealthPercent,
		MaxTemperature:   c.cfg.Monitoring.Smart.MaxTemperature,
	}
}

// Run performs one full check: launch the tool, capture the dump, parse it
// and build the displayable report.
func (c *Checker) Run(ctx context.Context) (*report.Report, error) {
	entries, err := c.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return report.Build(entries, c.Thresholds()), nil
}

// Collect launches CrystalDiskInfo and returns the parsed disk entries.
func (c *Checker) Collect(ctx context.Context) ([]report.DiskEntry, error) {
	executable, err := findExecutable(c.cfg.Checker.ToolPath)
	if err != nil {
		return nil, err
	}

	text, err := c.runDump(ctx, executable)
	if err != nil {
		return nil, err
	}

	entries := report.ParseEntries(text)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no disk sections in report", ErrNoReport)
	}
	return entries, nil
}

// runDump launches the tool through the elevated launch strategies in order
// and waits for a fresh report after each attempt. The strategies are
// fallbacks for environments where one launch path is blocked (antivirus,
// group policy); an elevation denial aborts immediately.
func (c *Checker) runDump(ctx context.Context, executable string) (string, error) {
	timeout := time.Duration(c.cfg.Checker.LaunchTimeout) * time.Second
	strategies := launchStrategies(executable, copyExitFlag, timeout)
	if len(strategies) == 0 {
		return "", ErrUnsupported
	}

	watcher := &outputWatcher{
		path:         filepath.Join(filepath.Dir(executable), outputFileName),
		pollInterval: time.Duration(c.cfg.Checker.PollInterval) * time.Millisecond,
	}
	c.clearStaleOutput(watcher)
	if prev, ok := readClipboardText(); ok {
		watcher.prevClipboard = prev
	}

	var issues []string
	for _, strategy := range strategies {
		exitCode, err := strategy.run()
		if errors.Is(err, ErrElevationDenied) {
			return "", err
		}
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s: launch failed (%v)", strategy.name, err))
			continue
		}
		if exitCode != 0 {
			issues = append(issues, fmt.Sprintf("%s: exit code %d", strategy.name, exitCode))
		}

		wait := time.Duration(c.cfg.Checker.OutputWait) * time.Second
		if strategy.direct {
			wait = time.Duration(c.cfg.Checker.DirectOutputWait) * time.Second
		}
		if text, ok := watcher.wait(ctx, wait); ok {
			return text, nil
		}

		issues = append(issues, fmt.Sprintf("%s: no CrystalDiskInfo output", strategy.name))
		if prev, ok := readClipboardText(); ok {
			watcher.prevClipboard = prev
		}
	}

	if len(issues) > 0 {
		if len(issues) > 6 {
			issues = issues[:6]
		}
		logger.Warn("Disk check launch issues",
			logger.String("issues", strings.Join(issues, " | ")))
	}
	return "", ErrNoReport
}

// clearStaleOutput removes the previous report file so an old result can
// never be mistaken for a new one. If deletion fails (file held open by an
// antivirus scan), the stale bytes are kept for freshness comparison.
func (c *Checker) clearStaleOutput(watcher *outputWatcher) {
	data, err := os.ReadFile(watcher.path)
	if err != nil {
		return
	}
	if err := os.Remove(watcher.path); err != nil {
		watcher.previousData = data
		logger.Debug("Could not remove stale report file",
			logger.String("path", watcher.path),
			logger.String("error", err.Error()))
	}
}
