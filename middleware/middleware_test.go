package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"llcdirectory/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestCachePage_ServesSecondRequestFromCache(t *testing.T) {
	cache := utils.NewMemoryPageCache(0)
	renders := 0

	router := gin.New()
	router.GET("/locations", CachePage(cache, time.Minute), func(c *gin.Context) {
		renders++
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<p>states</p>"))
	})

	first := serve(router, http.MethodGet, "/locations")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get(CacheStatusHeader))

	second := serve(router, http.MethodGet, "/locations")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get(CacheStatusHeader))
	assert.Equal(t, "<p>states</p>", second.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", second.Header().Get("Content-Type"))
	assert.Equal(t, 1, renders)
}

func TestCachePage_DoesNotStoreErrors(t *testing.T) {
	cache := utils.NewMemoryPageCache(0)
	renders := 0

	router := gin.New()
	router.GET("/states/:state", CachePage(cache, time.Minute), func(c *gin.Context) {
		renders++
		c.String(http.StatusNotFound, "State not found")
	})

	serve(router, http.MethodGet, "/states/Narnia")
	w := serve(router, http.MethodGet, "/states/Narnia")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 2, renders)
	assert.Equal(t, 0, cache.Len())
}

func TestCachePage_KeysByPath(t *testing.T) {
	cache := utils.NewMemoryPageCache(0)

	router := gin.New()
	router.GET("/services/:slug", CachePage(cache, time.Minute), func(c *gin.Context) {
		c.String(http.StatusOK, c.Param("slug"))
	})

	assert.Equal(t, "incfile", serve(router, http.MethodGet, "/services/incfile").Body.String())
	assert.Equal(t, "corpnet", serve(router, http.MethodGet, "/services/corpnet").Body.String())
	assert.Equal(t, "incfile", serve(router, http.MethodGet, "/services/incfile").Body.String())
	assert.Equal(t, 2, cache.Len())
}

func TestRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(2))
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/").Code)
	w := serve(router, http.MethodGet, "/")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRequestLogger(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger(zap.NewNop()))
	router.GET("/", func(c *gin.Context) {
		_, ok := c.Get(LoggerKey)
		assert.True(t, ok)
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := serve(router, http.MethodGet, "/")
	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestRateLimitMiddleware_PerForwardedClient(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(1))
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	from := func(xff string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", xff)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, from("203.0.113.7, 10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, from("203.0.113.7"))
	assert.Equal(t, http.StatusOK, from("unknown, 198.51.100.2"))
}

func TestRateLimiterStore_DropsIdleClients(t *testing.T) {
	store := newRateLimiterStore(5)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	store.lastSweep = now

	for i := 0; i < 100; i++ {
		store.getLimiter(fmt.Sprintf("198.51.100.%d", i))
	}
	assert.Equal(t, 100, store.size())

	now = now.Add(2 * time.Minute)
	active := store.getLimiter("198.51.100.1")

	now = now.Add(limiterIdleTTL - time.Minute)
	store.getLimiter("203.0.113.9")
	assert.Equal(t, 2, store.size())
	assert.Same(t, active, store.getLimiter("198.51.100.1"))
}
