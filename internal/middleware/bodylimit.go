package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodySize caps request body reads at maxBytes; oversized bodies fail
// inside the handler's read with a 413.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if body := c.Request.Body; body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, body, maxBytes)
		}

		c.Next()
	}
}
