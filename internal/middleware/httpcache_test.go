package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHTTPCacheStore struct {
	entries map[string][]byte
}

func newFakeHTTPCacheStore() *fakeHTTPCacheStore {
	return &fakeHTTPCacheStore{entries: map[string][]byte{}}
}

func (s *fakeHTTPCacheStore) get(_ context.Context, key string) ([]byte, bool) {
	raw, ok := s.entries[key]
	return raw, ok
}

func (s *fakeHTTPCacheStore) set(_ context.Context, key string, value []byte, _ time.Duration) {
	s.entries[key] = value
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHTTPCacheServesAnonymousGets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpCache(newFakeHTTPCacheStore()))

	var hits int
	r.GET("/api/news", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"news": []string{"a"}, "total": 1})
	})

	first := doGet(r, "/api/news?page=1", "")
	require.Equal(t, http.StatusOK, first.Code)

	second := doGet(r, "/api/news?page=1", "")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, hits, "second response should come from the cache")

	// A different query string is a different entry.
	doGet(r, "/api/news?page=2", "")
	assert.Equal(t, 2, hits)
}

func TestHTTPCacheSkipsAuthenticatedRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpCache(newFakeHTTPCacheStore()))

	var hits int
	r.GET("/api/user", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"email": "bisi@example.com"})
	})

	doGet(r, "/api/user", "some-token")
	doGet(r, "/api/user", "some-token")
	assert.Equal(t, 2, hits)
}

func TestHTTPCacheRespectsNoStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpCache(newFakeHTTPCacheStore()))

	var hits int
	r.GET("/api/logout-hint", func(c *gin.Context) {
		hits++
		c.Header("Cache-Control", "no-store")
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	doGet(r, "/api/logout-hint", "")
	doGet(r, "/api/logout-hint", "")
	assert.Equal(t, 2, hits)
}

func TestHTTPCacheIgnoresErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpCache(newFakeHTTPCacheStore()))

	var hits int
	r.GET("/api/news/:slug", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
	})

	doGet(r, "/api/news/missing", "")
	w := doGet(r, "/api/news/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 2, hits)
}
