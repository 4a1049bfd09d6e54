package middleware

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitMax     = 100
	rateLimitWindow  = 15 * time.Minute
	rateLimitMessage = "Too many requests from this IP, please try again after 15 minutes"
)

// RateLimit enforces a fixed window of 100 requests per 15 minutes per IP.
// Counters live in Redis when a client is supplied, otherwise in process
// memory. Counting errors fail open.
func RateLimit(rdb *redis.Client) gin.HandlerFunc {
	var local *gocache.Cache
	if rdb == nil {
		local = gocache.New(rateLimitWindow, 5*time.Minute)
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		window := time.Now().Unix() / int64(rateLimitWindow.Seconds())
		key := fmt.Sprintf("whingan:rate_limit:%s:%d", ip, window)

		var count int64
		if rdb != nil {
			n, err := rdb.Incr(c.Request.Context(), key).Result()
			if err != nil {
				c.Next()
				return
			}
			if n == 1 {
				rdb.Expire(c.Request.Context(), key, rateLimitWindow+time.Minute)
			}
			count = n
		} else {
			count = localIncr(local, key)
		}

		if count > rateLimitMax {
			response.TooManyRequests(c, rateLimitMessage)
			return
		}
		c.Next()
	}
}

func localIncr(cache *gocache.Cache, key string) int64 {
	counter := new(int64)
	if err := cache.Add(key, counter, gocache.DefaultExpiration); err != nil {
		if existing, ok := cache.Get(key); ok {
			counter = existing.(*int64)
		}
	}
	return atomic.AddInt64(counter, 1)
}
