package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tracklet-io/tracklet/internal/infrastructure/ratelimit"
	"github.com/tracklet-io/tracklet/internal/shared/config"
	"github.com/tracklet-io/tracklet/internal/shared/errors"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
	"github.com/tracklet-io/tracklet/internal/shared/utils"
)

// RateLimiter throttles a route per client IP. When the backing store fails
// the request is let through.
type RateLimiter struct {
	limiter ratelimit.Limiter
	rule    config.RateLimitRule
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.Limiter, rule config.RateLimitRule, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		rule:    rule,
		logger:  logger,
	}
}

func (m *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		decision, err := m.limiter.Allow(c.Request.Context(), key, m.rule)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "client_ip", key, "error", err)
			c.Next()
			return
		}

		if decision.Limit > 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		}

		if !decision.Allowed {
			retryAfter := int(decision.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			m.logger.Warnw("rate limit exceeded", "client_ip", key, "path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("too many requests, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
