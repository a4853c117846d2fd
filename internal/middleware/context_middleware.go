package middleware

import (
	"time"

	"go-staffdesk/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger puts a logger tagged with the request id and client ip into the
// request context, then logs the finished request. Must run after RequestID.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rid := c.GetString("request_id")
		ip := c.ClientIP()

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("client_ip", ip),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithClientIP(ctx, ip)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		reqLogger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
