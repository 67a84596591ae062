package routes

import (
	"net/http"
	"time"

	"llcdirectory/handlers"
	"llcdirectory/middleware"
	"llcdirectory/utils"
	"llcdirectory/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes registers the HTML pages. Pages that the site has always
// cached go through the page cache when one is configured.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cache utils.PageCache, ttl time.Duration) {
	cached := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if cache == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{middleware.CachePage(cache, ttl), h}
	}

	r.GET("/", cached(hb.Index)...)
	r.GET("/services/:slug", cached(hb.ServicePage)...)
	r.GET("/services/:slug/:state", hb.ServiceStatePage)
	r.GET("/states/:state", cached(hb.StatePage)...)
	r.GET("/locations", cached(hb.Locations)...)
	r.GET("/about", hb.About)
	r.GET("/contact", hb.Contact)
	r.GET("/privacy", hb.Privacy)
	r.GET("/sitemap.xml", hb.Sitemap)
}

// RegisterAPIRoutes registers the read-only JSON API.
func RegisterAPIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	{
		api.GET("/services", hb.ListServicesAPI)
		api.GET("/services/:slug", hb.GetServiceAPI)
		api.GET("/states", hb.ListStatesAPI)
		api.GET("/states/:state", hb.GetStateAPI)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.Health != nil {
		r.GET("/health", hb.Health)
		return
	}
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterStaticRoutes serves the embedded CSS and JS.
func RegisterStaticRoutes(r *gin.Engine) {
	r.StaticFS("/static", http.FS(web.Static()))
}

// RegisterRoutes centralizes registration of all endpoints.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cache utils.PageCache, ttl time.Duration) {
	RegisterPageRoutes(r, hb, cache, ttl)
	RegisterAPIRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	RegisterStaticRoutes(r)
}
