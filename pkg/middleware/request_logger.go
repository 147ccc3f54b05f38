package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = "request_id"
)

// RequestLogger tags every request with an id and logs it once it has been served.
// Server errors are logged at error level, client errors at warn level.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestId := c.GetHeader(RequestIDHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Set(RequestIDKey, requestId)
		c.Header(RequestIDHeader, requestId)

		c.Next()

		status := c.Writer.Status()
		level := zapcore.InfoLevel
		switch {
		case status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400:
			level = zapcore.WarnLevel
		}
		logger.Log(level, "http request served",
			zap.String("request_id", requestId),
			zap.String("http_method", c.Request.Method),
			zap.String("http_path", c.Request.URL.Path),
			zap.String("http_route", c.FullPath()),
			zap.Int("http_status", status),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
