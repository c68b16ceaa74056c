package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	sharedError "github.com/dormlife/community-api/internal/shared/error"
	"github.com/dormlife/community-api/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

// RequestTimeout is sent when the deadline passed before the handler wrote anything
var RequestTimeout = sharedError.ErrorResponse{
	Status:  http.StatusServiceUnavailable,
	Code:    "ERROR-004",
	Message: "요청 처리 시간이 초과되었습니다.",
}

// Timeout bounds every request context. Services pass the context on to GORM,
// the blob bucket and Redis, so a slow backend ends the request with an error.
// The handler runs on the request goroutine; nothing is written concurrently.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		logger.FromContext(ctx).Warn("요청 처리 시간 초과",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"timeout", timeout.String(),
			"status", c.Writer.Status(),
		)

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(RequestTimeout.Status, RequestTimeout)
		}
	}
}
