package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "paypal-subscription-webhook/internal/adapter/storage/redis"
	"paypal-subscription-webhook/pkg/apperror"
	"paypal-subscription-webhook/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultWebhookRule is the per-IP limit for the public webhook
// endpoint. Legitimate PayPal retries are far below this rate.
func DefaultWebhookRule() RateLimitRule {
	return RateLimitRule{Limit: 60, Window: time.Minute}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint
// group. The webhook endpoint is unauthenticated, so the caller IP is
// the only usable identity.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.ClientIP(), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}
