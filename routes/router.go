package routes

import (
	"time"

	"llcdirectory/handlers"
	"llcdirectory/middleware"
	"llcdirectory/utils"
	"llcdirectory/web"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterOptions carries what NewRouter needs beyond the handlers.
type RouterOptions struct {
	Logger            *zap.Logger
	PageCache         utils.PageCache // nil disables page caching
	CacheTTL          time.Duration   // defaults to utils.DefaultPageCacheTTL
	MaxRequestsPerMin int             // 0 disables rate limiting
}

// NewRouter builds the engine with the global middleware chain, templates and routes.
func NewRouter(hb *handlers.HandlerBundle, opts RouterOptions) (*gin.Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.L()
	}

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = utils.DefaultPageCacheTTL
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	if opts.MaxRequestsPerMin > 0 {
		router.Use(middleware.RateLimitMiddleware(opts.MaxRequestsPerMin))
	}
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.SetHTMLTemplate(tmpl)

	RegisterRoutes(router, hb, opts.PageCache, ttl)
	return router, nil
}
