package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(ContextRequestID)),
		}
		if id := PrincipalID(c); id != 0 {
			fields = append(fields, zap.Uint("principal_id", id))
		}
		if pt, ok := c.Get(ContextPrincipalType); ok {
			fields = append(fields, zap.Any("principal_type", pt))
		}

		log.Info("request", fields...)
	}
}
