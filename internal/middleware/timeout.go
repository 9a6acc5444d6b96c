package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"go.uber.org/zap"
)

// RequestTimeout bounds the request context handed to stores and upstream APIs.
// If the deadline passes before a handler writes a response, 504 is returned.
func RequestTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			logger.For(c).Warn("request timed out", zap.Duration("timeout", d))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{"error": "Request timed out"})
		}
	}
}
