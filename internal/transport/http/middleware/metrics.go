package middleware

import (
	"strconv"
	"time"

	"github.com/ErlanBelekov/recipes-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency by route template, so
// /receitas/1 and /receitas/2 share a series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
