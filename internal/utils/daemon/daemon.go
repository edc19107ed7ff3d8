package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"CheckDiskGo/internal/pkg/logger"
)

// IsRunning checks if the service is already running
func IsRunning(pidFile string) bool {
	if _, err := os.Stat(pidFile); os.IsNotExist(err) {
		return false
	}

	data, err := os.ReadFile(pidFile)
	if err != nil {
		logger.Error("Failed to read PID file",
			logger.String("error", err.Error()),
			logger.String("file", pidFile))
		return false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		logger.Error("Invalid PID in file",
			logger.String("error", err.Error()),
			logger.String("file", pidFile))
		return false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	// On Unix FindProcess always succeeds, so probe with signal 0
	err = process.Signal(syscall.Signal(0))
	return err == nil
}

// Daemonize forks the process and exits the parent
func Daemonize(configPath, pidFile string) {
	executable, err := os.Executable()
	if err != nil {
		logger.Fatal("Failed to get executable path", logger.String("error", err.Error()))
	}

	args := []string{"start"}
	if configPath != "" {
		args = append(args, "--config", configPath)
	}

	cmd := exec.Command(executable, args...)

	env := os.Environ()
	cmd.Env = append(env, "CHECK_DISK_GO_DAEMON=1")

	// Detach process from terminal
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	if err := cmd.Start(); err != nil {
		logger.Fatal("Failed to start daemon process", logger.String("error", err.Error()))
	}

	pid := cmd.Process.Pid
	logger.Info("Started daemon process", logger.Int("pid", pid))

	os.Exit(0)
}

// WritePIDFile writes the current process ID to the specified file
func WritePIDFile(pidFile string) {
	pid := os.Getpid()

	if err := os.MkdirAll(filepath.Dir(pidFile), 0755); err != nil {
		logger.Error("Failed to create directory for PID file",
			logger.String("error", err.Error()),
			logger.String("directory", filepath.Dir(pidFile)))
		return
	}

	if err := os.WriteFile(pidFile, []byte(fmt.Sprintf("%d", pid)), 0644); err != nil {
		logger.Error("Failed to write PID file",
			logger.String("error", err.Error()),
			logger.String("file", pidFile))
		return
	}

	logger.Info("Wrote PID to file",
		logger.Int("pid", pid),
		logger.String("file", pidFile))
}

// RemovePIDFile removes the PID file during shutdown
func RemovePIDFile(pidFile string) {
	if err := os.Remove(pidFile); err != nil && !os.IsNotExist(err) {
		logger.Error("Failed to remove PID file during shutdown",
			logger.String("error", err.Error()),
			logger.String("file", pidFile))
	} else {
		logger.Info("Removed PID file during shutdown",
			logger.String("file", pidFile))
	}
}

// StopProcess stops the running process
func StopProcess(pidFile string) (int, error) {
	if _, err := os.Stat(pidFile); os.IsNotExist(err) {
		return 0, fmt.Errorf("service is not running (PID file not found)")
	}

	data, err := os.ReadFile(pidFile)
	if err != nil {
		return 0, fmt.Errorf("failed to read PID file: %w", err)
	}

	pidStr := strings.TrimSpace(string(data))
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return 0, fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return 0, fmt.Errorf("failed to send terminate signal: %w", err)
	}

	if err := os.Remove(pidFile); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to remove PID file after stopping process",
			logger.String("error", err.Error()),
			logger.String("file", pidFile))
	}

	return pid, nil
}

// GetStatus checks if the service is running and returns the PID
func GetStatus(pidFile string) (bool, int) {
	if _, err := os.Stat(pidFile); os.IsNotExist(err) {
		return false, 0
	}

	data, err := os.ReadFile(pidFile)
	if err != nil {
		logger.Error("Failed to read PID file",
			logger.String("error", err.Error()),
			logger.String("file", pidFile))
		return false, 0
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		logger.Error("Invalid PID in file",
			logger.String("error", err.Error()),
			logger.String("file", pidFile))
		return false, 0
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false, 0
	}

	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true, pid
	}

	// Process does not exist, clean up the stale PID file
	os.Remove(pidFile)
	return false, 0
}
