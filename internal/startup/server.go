package startup

import (
	"CheckDiskGo/internal/api/router"
	"CheckDiskGo/internal/app"
)

// StartServer initializes and starts the HTTP server
func StartServer(application *app.Application) *router.Builder {
	config := application.GetConfig()

	// The builder internally creates and starts the disk health monitor
	builder := router.NewBuilder(config).
		WithAllRoutes()

	go builder.Start()

	return builder
}
