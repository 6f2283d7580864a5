package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterHealth registers the liveness endpoint.
// - GET /app/health -> service banner with timestamp
func RegisterHealth(r *gin.Engine) {
	r.GET("/app/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Learning Notifier API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   "1.0.0",
		})
	})
}
