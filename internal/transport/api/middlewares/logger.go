package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет по строке на запрос. Приватные ошибки контекста попадают только в лог.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithField("component", "http")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		}
		if userID, ok := c.Get(CurrentUserIDKey); ok {
			fields["userID"] = userID
		}
		reqLog := entry.WithFields(fields)

		switch {
		case len(c.Errors) > 0:
			reqLog.WithError(c.Errors.Last()).Error("request failed")
		case c.Writer.Status() >= 500: //nolint:mnd
			reqLog.Error("request failed")
		case c.Writer.Status() >= 400: //nolint:mnd
			reqLog.Warn("request rejected")
		default:
			reqLog.Info("request")
		}
	}
}
