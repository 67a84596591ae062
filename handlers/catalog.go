package handlers

import (
	"errors"
	"net/http"

	"llcdirectory/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler renders the directory pages.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

func internalError(c *gin.Context, msg string, err error) {
	getLogger(c).Error(msg, zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

// Index handles GET /.
func (h *CatalogHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	services, err := h.Svc.ListServices(ctx)
	if err != nil {
		internalError(c, "Index: failed to list services", err)
		return
	}
	states, err := h.Svc.ListStates(ctx)
	if err != nil {
		internalError(c, "Index: failed to list states", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":       "Best LLC Formation Services",
		"Description": "Compare LLC formation services by price, features and state coverage.",
		"Services":    services,
		"States":      states,
	})
}

// ServicePage handles GET /services/:slug.
func (h *CatalogHandler) ServicePage(c *gin.Context) {
	slug := c.Param("slug")
	service, err := h.Svc.ServiceBySlug(c.Request.Context(), slug)
	if errors.Is(err, catalog.ErrServiceNotFound) {
		c.String(http.StatusNotFound, "Service not found")
		return
	}
	if err != nil {
		internalError(c, "ServicePage: failed to load service", err)
		return
	}
	c.HTML(http.StatusOK, "service.html", gin.H{
		"Title":       service.Name + " Review",
		"Description": service.Description,
		"Service":     service,
	})
}

// ServiceStatePage handles GET /services/:slug/:state.
func (h *CatalogHandler) ServiceStatePage(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")
	stateName := c.Param("state")

	service, err := h.Svc.ServiceBySlug(ctx, slug)
	if errors.Is(err, catalog.ErrServiceNotFound) {
		c.String(http.StatusNotFound, "Service not found")
		return
	}
	if err != nil {
		internalError(c, "ServiceStatePage: failed to load service", err)
		return
	}
	if !service.OffersState(stateName) {
		c.String(http.StatusNotFound, "State not available for this service")
		return
	}

	businesses, err := h.Svc.LocalBusinessesByState(ctx, stateName)
	if err != nil {
		internalError(c, "ServiceStatePage: failed to load local businesses", err)
		return
	}
	c.HTML(http.StatusOK, "service_state.html", gin.H{
		"Title":           service.Name + " LLC Formation in " + stateName,
		"Service":         service,
		"StateName":       stateName,
		"LocalBusinesses": businesses,
	})
}

// StatePage handles GET /states/:state.
func (h *CatalogHandler) StatePage(c *gin.Context) {
	ctx := c.Request.Context()
	stateName := c.Param("state")

	services, err := h.Svc.ServicesByState(ctx, stateName)
	if err != nil {
		internalError(c, "StatePage: failed to load services", err)
		return
	}
	businesses, err := h.Svc.LocalBusinessesByState(ctx, stateName)
	if err != nil {
		internalError(c, "StatePage: failed to load local businesses", err)
		return
	}
	if len(services) == 0 && len(businesses) == 0 {
		c.String(http.StatusNotFound, "State not found")
		return
	}
	c.HTML(http.StatusOK, "state.html", gin.H{
		"Title":           "Form an LLC in " + stateName,
		"Description":     "LLC formation services and local business help in " + stateName + ".",
		"StateName":       stateName,
		"Services":        services,
		"LocalBusinesses": businesses,
	})
}

// Locations handles GET /locations.
func (h *CatalogHandler) Locations(c *gin.Context) {
	ctx := c.Request.Context()
	services, err := h.Svc.ListServices(ctx)
	if err != nil {
		internalError(c, "Locations: failed to list services", err)
		return
	}
	states, err := h.Svc.ListStates(ctx)
	if err != nil {
		internalError(c, "Locations: failed to list states", err)
		return
	}
	c.HTML(http.StatusOK, "locations.html", gin.H{
		"Title":    "LLC Formation by State",
		"Services": services,
		"States":   states,
	})
}

// StaticPage renders a template that needs no catalog data.
func StaticPage(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, gin.H{"Title": title})
	}
}
