package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/K227-arch/home-solutions/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

// RateLimitMiddleware limits requests per client IP using Redis counters with
// expiry. The counters live outside the process so horizontally scaled
// replicas share one counter. When Redis is unreachable the request is allowed
// through; availability of the auth endpoints wins over strictness.
func RateLimitMiddleware(rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	max := int64(cfg.RateLimit.AuthMaxRequests)

	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:auth:%s", c.ClientIP())

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			slog.Error("rate limit counter unavailable", "error", err, "key", key)
			c.Next()
			return
		}
		if count == 1 {
			if err := rdb.Expire(c.Request.Context(), key, window).Err(); err != nil {
				slog.Error("rate limit expiry not set", "error", err, "key", key)
			}
		}

		if count > max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please try again later"})
			return
		}

		c.Next()
	}
}
