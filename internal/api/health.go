package api

import (
	"net/http" // HTTP status codes
	"time"     // Current timestamp

	"github.com/gin-gonic/gin" // Gin web framework
)

// Service metadata reported by the health check
const (
	ServiceName    = "E-Prasadam API" // Service name
	ServiceVersion = "1.0.0"          // Service version
)

// HealthHandler reports static service metadata plus the current time
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",                             // Service status
			"service":   ServiceName,                           // Service name
			"version":   ServiceVersion,                        // Service version
			"timestamp": time.Now().UTC().Format(time.RFC3339), // Current timestamp
		})
	}
}
