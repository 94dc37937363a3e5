package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cryptoex/internal/metrics"
)

// Metrics returns a Gin middleware that records request counts and latency
// per route template. Requests that match no route share one label.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		metrics.ObserveHTTP(c.Request.Method, routeOf(c), strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// routeOf returns the matched route template, keeping label and log
// cardinality bounded by the router rather than by client input.
func routeOf(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return "unmatched"
}
