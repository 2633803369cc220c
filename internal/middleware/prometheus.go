package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spectrakit/fragmentor/internal/metrics"
)

// PrometheusMiddleware records per-route request durations and counts.
// Labels use the route pattern rather than the raw path to keep
// cardinality bounded.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		elapsed := time.Since(start).Seconds()
		metrics.RequestDuration.WithLabelValues(method, route, status).Observe(elapsed)
		metrics.RequestsTotal.WithLabelValues(method, route, status).Inc()
	}
}
