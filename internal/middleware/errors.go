package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

// ErrorHandler is the single place where errors become responses. Handlers
// only call c.Error; the last recorded error wins. Panics are answered as
// Internal.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("request_id", c.GetString(ContextRequestID)),
				)
				c.Abort()
				respond(c, log, httperr.Internal(nil))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		respond(c, log, c.Errors.Last().Err)
	}
}

func respond(c *gin.Context, log *zap.Logger, err error) {
	e := httperr.From(err)
	if e.Kind.Status() >= 500 {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(ContextRequestID)),
			zap.Error(err),
		)
	}

	if c.Writer.Written() {
		return
	}
	httperr.Write(c, e)
}
