package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/org-directory-api/internal/config"
	"github.com/kingrain94/org-directory-api/internal/tenancy"
	"github.com/kingrain94/org-directory-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit limits requests per tenant, keyed on the ambient scope.
// Unrestricted (administrative) requests carry no tenant and fall through
// to the global per-IP limit only.
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, ok := tenancy.FromContext(c.Request.Context())
		if !ok {
			c.Next()
			return
		}

		limit := m.config.DefaultRateLimit
		key := fmt.Sprintf("rate_limit:tenant:%s", tenantID)

		if !m.allow(c, key, limit) {
			return
		}
		c.Next()
	}
}

// GlobalRateLimit limits requests per client IP across all tenants.
func (m *RateLimitMiddleware) GlobalRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := m.config.GlobalRateLimit
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())

		if !m.allow(c, key, limit) {
			return
		}
		c.Next()
	}
}

// allow applies a fixed one-minute window counter in redis. Redis failures
// fail open: rate limiting protects capacity, it must not take the API down.
func (m *RateLimitMiddleware) allow(c *gin.Context, key string, limit int) bool {
	ctx := c.Request.Context()

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err)
		return true
	}

	reset := time.Now().Add(time.Minute).Unix()
	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Rate limit exceeded",
			"limit": limit,
			"reset": reset,
		})
		c.Abort()
		return false
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

	return true
}
