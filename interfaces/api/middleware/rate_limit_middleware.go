package middleware

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"task-tracker/domain/ports"
	"task-tracker/pkg/logger"
	"task-tracker/pkg/utils"
)

// RateLimitMiddleware limits requests per client IP. Limiter failures let the
// request through.
func RateLimitMiddleware(limiter ports.RateLimiterPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		result, err := limiter.Allow(ctx, c.IP())
		if err != nil {
			logger.WarnContext(ctx, "Rate limiter unavailable, allowing request", "ip", c.IP(), "error", err)
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
			logger.WarnContext(ctx, "Rate limit exceeded", "ip", c.IP(), "path", c.Path())
			return utils.TooManyRequestsResponse(c)
		}

		return c.Next()
	}
}
