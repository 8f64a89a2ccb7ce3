package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request, tagged with the request id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "-"
		}
		log.Printf("[HTTP] request_id=%s method=%s path=%s route=%s query=%q status=%d latency_ms=%.3f bytes=%d",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			route,
			c.Request.URL.RawQuery,
			c.Writer.Status(),
			float64(time.Since(start).Microseconds())/1000.0,
			c.Writer.Size(),
		)
	}
}
