package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creditreportanalyser/internal/pkg/logger"
)

const TraceIDHeader = "X-Trace-Id"

// AttachTraceID gives every request a trace id, carried both in the request
// context for log correlation and in the response headers for callers.
func AttachTraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Request = c.Request.WithContext(logger.WithTraceID(c.Request.Context(), traceID))
		c.Writer.Header().Set(TraceIDHeader, traceID)

		c.Next()
	}
}
