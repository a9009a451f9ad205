package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout puts a deadline on the request context. Every storage call
// threads this context, so a stuck query surfaces as
// context.DeadlineExceeded and maps to 503 at the handler layer.
func Timeout(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		d = 10 * time.Second
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
