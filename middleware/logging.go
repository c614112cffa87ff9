package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finance-tracker/api/logger"
)

// RequestLogger logs one structured line per request.
func RequestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	logger.Get().Info("request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)))
}
