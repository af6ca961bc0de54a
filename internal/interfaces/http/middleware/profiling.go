package middleware

import (
	"context"

	"github.com/erp/installment/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// Profiling labels the request's CPU samples with its method and route
// pattern. Unmatched paths are not labeled.
func Profiling(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if !enabled || route == "" {
			c.Next()
			return
		}
		labels := map[string]string{
			telemetry.ProfilingLabelMethod: c.Request.Method,
			telemetry.ProfilingLabelRoute:  route,
		}
		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
