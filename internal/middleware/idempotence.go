package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotenceHeader = "X-Idempotence"
	idempotencePrefix = "whingan:idempotence:"
	idempotenceTTL    = 60 * time.Second
)

// idempotenceStore claims a request key for the window and releases it when
// the request turns out to be retryable.
type idempotenceStore interface {
	claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	release(ctx context.Context, key string)
}

type redisIdempotenceStore struct {
	rdb *redis.Client
}

func (s redisIdempotenceStore) claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, key, "0", ttl).Result()
}

func (s redisIdempotenceStore) release(ctx context.Context, key string) {
	s.rdb.Del(ctx, key)
}

// Idempotence rejects identical non-GET requests repeated within a short
// window, so double-clicked submit buttons do not create duplicate rows.
// Requires Redis; a nil client disables the check.
func Idempotence(rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return idempotence(redisIdempotenceStore{rdb: rdb})
}

func idempotence(store idempotenceStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || skipIdempotence(c.Request.URL.Path) {
			c.Next()
			return
		}

		key := resolveIdempotenceKey(c)
		if key == "" {
			c.Next()
			return
		}
		redisKey := idempotencePrefix + key
		ctx := c.Request.Context()

		claimed, err := store.claim(ctx, redisKey, idempotenceTTL)
		if err != nil {
			c.Next()
			return
		}
		if !claimed {
			response.Conflict(c, "Duplicate request, please try again shortly")
			return
		}

		c.Next()

		// Failed requests may be retried immediately.
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			store.release(ctx, redisKey)
		}
	}
}

// skipIdempotence exempts credential endpoints, where a retry with the same
// body is legitimate, and tribute likes, whose repeat behavior is owned by
// the per-visitor like table and must reach the handler to report it.
func skipIdempotence(path string) bool {
	p := strings.TrimRight(strings.ToLower(path), "/")
	if strings.HasPrefix(p, "/api/tributes/") && strings.HasSuffix(p, "/like") {
		return true
	}
	switch p {
	case "/api/login", "/api/signup", "/api/logout",
		"/api/request-password-reset", "/api/verify-reset-token":
		return true
	default:
		return false
	}
}

// resolveIdempotenceKey hashes the request identity: explicit header when
// given, otherwise method, URL, body, agent, ip, cookies and token. Cookies
// take part so two browsers behind one NAT never collide.
func resolveIdempotenceKey(c *gin.Context) string {
	if hdr := c.GetHeader(idempotenceHeader); hdr != "" {
		return hdr
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	ua := c.Request.UserAgent()
	ip := c.ClientIP()
	cookies := c.GetHeader("Cookie")
	token := NormalizeToken(c.GetHeader("Authorization"))
	if len(body) == 0 && ua == "" && ip == "" && cookies == "" && token == "" {
		return ""
	}

	raw := c.Request.Method + "|" + c.Request.URL.String() + "|" + string(body) +
		"|" + ua + "|" + ip + "|" + cookies + "|" + token
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
