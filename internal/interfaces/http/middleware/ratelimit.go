package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"milkrun/internal/infrastructure/ratelimit"
	"milkrun/internal/shared/logger"
	"milkrun/internal/shared/utils"
)

// RateLimit throttles requests per client IP. If the limiter backend errors,
// the request is allowed rather than blocking all traffic.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err, "client_ip", c.ClientIP())
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
