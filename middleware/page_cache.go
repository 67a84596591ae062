package middleware

import (
	"bytes"
	"net/http"
	"time"

	"llcdirectory/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CacheStatusHeader reports HIT or MISS on cached routes.
const CacheStatusHeader = "X-Cache"

// capturingWriter tees the handler's output so it can be stored after the response is sent.
type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage serves GET responses from cache for ttl, keyed by request path.
// Only 200 responses are stored. Cache errors degrade to an uncached render.
func CachePage(cache utils.PageCache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		logger := zap.L()
		key := c.Request.URL.Path

		page, ok, err := cache.Get(c.Request.Context(), key)
		if err != nil {
			logger.Warn("page cache read failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			c.Header(CacheStatusHeader, "HIT")
			c.Data(page.Status, page.ContentType, page.Body)
			c.Abort()
			return
		}

		c.Header(CacheStatusHeader, "MISS")
		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		c.Writer = writer.ResponseWriter

		if writer.Status() != http.StatusOK {
			return
		}
		entry := utils.CachedPage{
			Status:      http.StatusOK,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		}
		if err := cache.Set(c.Request.Context(), key, entry, ttl); err != nil {
			logger.Warn("page cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
}
