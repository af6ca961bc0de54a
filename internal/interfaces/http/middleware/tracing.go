package middleware

import (
	"github.com/erp/installment/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MaxRequestIDLength caps the request_id span attribute
const MaxRequestIDLength = 128

// Tracing returns the otelgin server-span middleware followed by a handler
// that tags the span with the request ID. Mount after logger.RequestID.
func Tracing(serviceName string, enabled bool) []gin.HandlerFunc {
	if !enabled {
		return nil
	}
	return []gin.HandlerFunc{otelgin.Middleware(serviceName), tagSpan}
}

func tagSpan(c *gin.Context) {
	span := trace.SpanFromContext(c.Request.Context())
	if span.IsRecording() {
		if id := logger.GinRequestID(c); id != "" && len(id) <= MaxRequestIDLength {
			span.SetAttributes(attribute.String("request_id", id))
		}
		if route := c.FullPath(); route != "" {
			span.SetAttributes(attribute.String("http.route", route))
		}
	}
	c.Next()
}
