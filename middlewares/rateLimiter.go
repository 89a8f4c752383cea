package middlewares

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/pizza_sales/config"
	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "ratelimit:"

// RateLimiter is a fixed-window request counter per client IP, kept in Redis
// so every replica shares the same budget.
type RateLimiter struct {
	client redis.UniversalClient
	limit  int64
	window time.Duration
}

func NewRateLimiter(client redis.UniversalClient, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow counts one request for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(c *gin.Context, key string) (bool, error) {
	ctx := c.Request.Context()
	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, rateLimitPrefix+key)
	// the first request of a window starts the clock
	pipe.ExpireNX(ctx, rateLimitPrefix+key, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= rl.limit, nil
}

func (rl *RateLimiter) RateLimitMiddleware(c *gin.Context) {
	ok, err := rl.Allow(c, c.ClientIP())
	if err != nil {
		// fail open on Redis errors
		config.LogError(config.GetLogger(), "rateLimiter.go", "RateLimitMiddleware", "redis", nil, err)
		c.Next()
		return
	}
	if !ok {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": fmt.Sprintf("Rate limit exceeded. Try again in %d seconds", int(rl.window.Seconds())),
		})
		return
	}
	c.Next()
}
