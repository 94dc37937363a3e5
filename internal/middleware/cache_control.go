package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheControl marks responses as publicly cacheable for maxAge in browsers
// and shared caches. Handlers may override the header on error paths.
func CacheControl(maxAge time.Duration) gin.HandlerFunc {
	secs := int(maxAge.Seconds())
	value := fmt.Sprintf("public, max-age=%d, s-maxage=%d", secs, secs)
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}
