package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds the whole request, provider fan-out included. The
// search pipeline itself imposes no deadline; this is the transport
// layer's to supply.
func Timeout(seconds int) gin.HandlerFunc {
	timeout := time.Duration(seconds) * time.Second

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
