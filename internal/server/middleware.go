package server

import (
	"time"

	"github.com/Jonathanthedeveloper/solana-artisan-plaza-main/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs every request with status and timing once the
// handler chain has finished.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
		"client":  c.ClientIP(),
	}
	if raw := c.Request.URL.RawQuery; raw != "" {
		fields["query"] = raw
	}

	utils.Info("HTTP Request", fields)
}
