package router

import (
	"context"

	"CheckDiskGo/internal/monitoring/smart"
	"CheckDiskGo/internal/pkg/config"
	"CheckDiskGo/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Builder provides a fluent interface for constructing a router
type Builder struct {
	router *Router
	ctx    context.Context
	cancel context.CancelFunc

	smartMonitor *smart.Monitor
}

// NewBuilder creates a new router builder
func NewBuilder(cfg *config.Config) *Builder {
	ctx, cancel := context.WithCancel(context.Background())

	smartMonitor := createSmartMonitor(cfg)

	return &Builder{
		router:       New(cfg, smartMonitor),
		ctx:          ctx,
		cancel:       cancel,
		smartMonitor: smartMonitor,
	}
}

// createSmartMonitor creates and starts the disk health monitor
func createSmartMonitor(cfg *config.Config) *smart.Monitor {
	monitor := smart.NewMonitor(cfg)
	if err := monitor.StartMonitoring(); err != nil {
		logger.Warn("Failed to start disk health monitor", logger.String("error", err.Error()))
	} else {
		logger.Debug("Started disk health monitoring service")
	}
	return monitor
}

// WithMiddleware adds a middleware to the router
func (b *Builder) WithMiddleware(middleware gin.HandlerFunc) *Builder {
	b.router.engine.Use(middleware)
	return b
}

// WithAllRoutes adds all routes and initializes the router
func (b *Builder) WithAllRoutes() *Builder {
	b.router.Initialize()
	return b
}

// GetRouter returns the underlying router
func (b *Builder) GetRouter() *Router {
	return b.router
}

// GetSmartMonitor returns the disk health monitor
func (b *Builder) GetSmartMonitor() *smart.Monitor {
	return b.smartMonitor
}

// Start starts the HTTP server
func (b *Builder) Start() {
	b.router.Start()
}

// Shutdown stops all monitors
func (b *Builder) Shutdown() {
	if b.cancel != nil {
		b.cancel()
	}

	if b.smartMonitor != nil {
		b.smartMonitor.StopMonitoring()
		logger.Info("Stopped disk health monitoring service")
	}
}
