package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	httpCachePrefix  = "whingan:api-cache:"
	httpCacheTTL     = 15 * time.Second
	httpCacheMaxBody = 1 << 20
)

type httpCacheStore interface {
	get(ctx context.Context, key string) ([]byte, bool)
	set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type redisHTTPCacheStore struct {
	rdb *redis.Client
}

func (s redisHTTPCacheStore) get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	return raw, err == nil
}

func (s redisHTTPCacheStore) set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	_ = s.rdb.Set(ctx, key, value, ttl).Err()
}

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType,omitempty"`
	Body        []byte `json:"body"`
}

type cacheBodyWriter struct {
	gin.ResponseWriter
	body     []byte
	overflow bool
}

func (w *cacheBodyWriter) Write(data []byte) (int, error) {
	w.capture(data)
	return w.ResponseWriter.Write(data)
}

func (w *cacheBodyWriter) WriteString(s string) (int, error) {
	w.capture([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

func (w *cacheBodyWriter) capture(data []byte) {
	if w.overflow || len(data) == 0 {
		return
	}
	if len(w.body)+len(data) > httpCacheMaxBody {
		w.overflow = true
		return
	}
	w.body = append(w.body, data...)
}

// HTTPCache serves anonymous GET responses from Redis for a short TTL.
// Authenticated requests and every non-GET pass straight through. A nil
// client disables caching entirely.
func HTTPCache(rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return httpCache(redisHTTPCacheStore{rdb: rdb})
}

func httpCache(store httpCacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet ||
			strings.TrimSpace(c.GetHeader("Authorization")) != "" {
			c.Next()
			return
		}

		key := httpCachePrefix + c.Request.URL.RequestURI()
		if raw, ok := store.get(c.Request.Context(), key); ok {
			var payload cachedResponse
			if json.Unmarshal(raw, &payload) == nil && payload.Status > 0 {
				if payload.ContentType == "" {
					payload.ContentType = "application/json; charset=utf-8"
				}
				c.Data(payload.Status, payload.ContentType, payload.Body)
				c.Abort()
				return
			}
		}

		buffer := &cacheBodyWriter{ResponseWriter: c.Writer}
		c.Writer = buffer
		c.Next()

		status := c.Writer.Status()
		if status != http.StatusOK || buffer.overflow || len(buffer.body) == 0 {
			return
		}
		cacheControl := strings.ToLower(c.Writer.Header().Get("Cache-Control"))
		if strings.Contains(cacheControl, "no-store") || strings.Contains(cacheControl, "private") {
			return
		}

		raw, err := json.Marshal(cachedResponse{
			Status:      status,
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        buffer.body,
		})
		if err != nil {
			return
		}
		store.set(c.Request.Context(), key, raw, httpCacheTTL)
	}
}
