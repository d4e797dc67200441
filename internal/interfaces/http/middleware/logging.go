package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tracklet-io/tracklet/internal/shared/constants"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

// Logger writes one structured line per request. Client errors log at warn,
// server errors at error, everything else at debug.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		// route is the registered pattern, e.g. /api/v1/ticket/status/:id
		if route := c.FullPath(); route != "" {
			args = append(args, "route", route)
		}
		if raw := c.Request.URL.RawQuery; raw != "" {
			args = append(args, "query", raw)
		}

		if requestID, ok := c.Get(constants.ContextKeyRequestID); ok {
			args = append(args, "request_id", requestID)
		}
		if userID, ok := c.Get(constants.ContextKeyUserID); ok {
			args = append(args, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", args...)
		case status >= 400:
			log.Warnw("request rejected", args...)
		default:
			log.Debugw("request served", args...)
		}
	}
}
