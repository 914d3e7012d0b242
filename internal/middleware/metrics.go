package middleware

import (
	"time"

	"github.com/SscSPs/currency_converter_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count, latency and in-flight gauge for every route.
// The matched route template is used as the path label to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := metrics.TrackInFlight()
		defer done()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
