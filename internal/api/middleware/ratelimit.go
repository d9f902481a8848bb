package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-identity/internal/api/shared/errors"
	"github.com/feral-file/ff-identity/internal/logger"
	"github.com/feral-file/ff-identity/internal/ratelimit"
)

const (
	RATE_LIMIT_REMAINING_HEADER = "X-RateLimit-Remaining"
	RETRY_AFTER_HEADER          = "Retry-After"
)

// RateLimit limits requests per client IP. A nil limiter disables limiting.
// Limiter errors let the request through.
func RateLimit(l ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}

		decision, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if !decision.Allowed {
			c.Header(RETRY_AFTER_HEADER, strconv.Itoa(ratelimit.RetryAfterSeconds(decision.RetryAfter)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.NewRateLimitedError())
			return
		}

		c.Header(RATE_LIMIT_REMAINING_HEADER, strconv.Itoa(decision.Remaining))
		c.Next()
	}
}
