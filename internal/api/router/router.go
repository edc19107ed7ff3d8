package router

import (
	"fmt"
	"net/http"

	"CheckDiskGo/internal/api/handlers"
	"CheckDiskGo/internal/api/middleware"
	authRoutes "CheckDiskGo/internal/api/router/routes/auth"
	reportRoutes "CheckDiskGo/internal/api/router/routes/report"
	wsRoutes "CheckDiskGo/internal/api/router/routes/websocket"
	"CheckDiskGo/internal/monitoring/smart"
	"CheckDiskGo/internal/pkg/config"
	"CheckDiskGo/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router encapsulates the HTTP router functionality
type Router struct {
	config        *config.Config
	engine        *gin.Engine
	reportHandler *handlers.ReportHandler
	smartMonitor  *smart.Monitor
}

// New creates a new router instance with the given configuration
func New(cfg *config.Config, smartMonitor *smart.Monitor) *Router {
	if cfg.Logs.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	return &Router{
		config:        cfg,
		engine:        engine,
		reportHandler: handlers.NewReportHandler(cfg, smartMonitor),
		smartMonitor:  smartMonitor,
	}
}

// Initialize sets up the router with middlewares and routes
func (r *Router) Initialize() *Router {
	r.engine.Use(gin.Recovery())
	r.engine.Use(LoggerMiddleware())

	if r.config.API.CORS.Enabled {
		r.engine.Use(corsMiddleware(r.config))
	}
	if r.config.API.Auth.Enabled {
		r.engine.Use(middleware.JWTAuthMiddleware(r.config.API.Auth.JWTSecret))
	}

	r.registerAPIRoutes()
	r.registerWebSocketRoutes()
	r.registerRootAPIEndpoint()

	for _, route := range r.engine.Routes() {
		logger.Debug("Registered route",
			logger.String("method", route.Method),
			logger.String("path", route.Path))
	}

	return r
}

// corsMiddleware builds the CORS policy from configuration
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(cfg.API.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.API.CORS.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	if len(cfg.API.CORS.AllowedMethods) > 0 {
		corsConfig.AllowMethods = cfg.API.CORS.AllowedMethods
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	return cors.New(corsConfig)
}

// registerAPIRoutes registers all API-specific routes
func (r *Router) registerAPIRoutes() {
	reportRoutes.RegisterRoutes(r.engine, r.reportHandler)

	registrar := &authRoutes.AuthRegistrar{}
	if err := registrar.Register(r.engine, r.config); err != nil {
		logger.Error("Failed to register auth routes",
			logger.String("error", err.Error()))
	}
}

// registerWebSocketRoutes registers all WebSocket routes
func (r *Router) registerWebSocketRoutes() {
	wsRoutes.RegisterWebSocketRoutes(r.engine, r.smartMonitor)
}

// registerRootAPIEndpoint provides a simple API health check endpoint
func (r *Router) registerRootAPIEndpoint() {
	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"app":     "CheckDiskGo API",
			"version": "1.0",
		})
	})

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

// LoggerMiddleware creates a middleware for logging HTTP requests
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip logging for WebSocket connections
		if c.Request.Header.Get("Upgrade") == "websocket" {
			c.Next()
			return
		}

		c.Next()

		logger.Info("HTTP Request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.String("client_ip", c.ClientIP()),
		)
	}
}

// Start starts the HTTP server
func (r *Router) Start() {
	addr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	logger.Info("Starting HTTP server", logger.String("address", addr))

	if err := r.engine.Run(addr); err != nil {
		logger.Error("Failed to start HTTP server", logger.String("error", err.Error()))
	}
}
