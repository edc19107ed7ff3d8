package middleware

import (
	"net/http"
	"strings"

	"CheckDiskGo/internal/pkg/jwt"
	"CheckDiskGo/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware creates a middleware to validate JWT tokens
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Paths that don't require auth
		excludedPaths := []string{
			"/api/auth/login",
			"/",
			"/health",
		}

		currentPath := c.Request.URL.Path
		for _, path := range excludedPaths {
			if currentPath == path {
				c.Next()
				return
			}
		}

		// WebSocket clients may carry the token in a query param instead of
		// the Authorization header.
		if c.Request.Header.Get("Upgrade") == "websocket" {
			token := c.Query("token")

			if token == "" {
				authHeader := c.GetHeader("Authorization")
				if authHeader == "" {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
					return
				}

				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || parts[0] != "Bearer" {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
					return
				}
				token = parts[1]
			}

			claims, err := jwt.ValidateToken(token, jwtSecret)
			if err != nil {
				logger.Warn("Invalid JWT token for WebSocket",
					logger.String("error", err.Error()),
					logger.String("path", currentPath))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}

			c.Set("username", claims.Username)
			c.Next()
			return
		}

		// Regular HTTP request auth flow
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			return
		}

		tokenString := parts[1]
		claims, err := jwt.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid JWT token", logger.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
