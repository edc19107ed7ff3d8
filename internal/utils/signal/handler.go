package signal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"CheckDiskGo/internal/api/router"
	"CheckDiskGo/internal/app"
	"CheckDiskGo/internal/pkg/logger"
)

var (
	cleanupMu    sync.Mutex
	cleanupFuncs []func()
)

// RegisterCleanupFunc registers a function to run before the process exits
func RegisterCleanupFunc(fn func()) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanupFuncs = append(cleanupFuncs, fn)
}

func runCleanupFuncs() {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	for _, fn := range cleanupFuncs {
		fn()
	}
	cleanupFuncs = nil
}

// HandleSignals sets up signal handling for graceful shutdown
func HandleSignals(application *app.Application, builder *router.Builder) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for {
		sig := <-sigChan
		switch sig {
		case syscall.SIGINT, syscall.SIGTERM:
			logger.Info("Received termination signal, shutting down...",
				logger.String("signal", sig.String()))

			builder.Shutdown()
			runCleanupFuncs()
			application.Shutdown()
			os.Exit(0)
		case syscall.SIGHUP:
			logger.Info("Received SIGHUP signal, ignoring (config reload not supported)")
		}
	}
}
