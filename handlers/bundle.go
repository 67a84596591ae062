package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Pages
	Index            gin.HandlerFunc
	ServicePage      gin.HandlerFunc
	ServiceStatePage gin.HandlerFunc
	StatePage        gin.HandlerFunc
	Locations        gin.HandlerFunc
	About            gin.HandlerFunc
	Contact          gin.HandlerFunc
	Privacy          gin.HandlerFunc
	Sitemap          gin.HandlerFunc

	// JSON API
	ListServicesAPI gin.HandlerFunc
	GetServiceAPI   gin.HandlerFunc
	ListStatesAPI   gin.HandlerFunc
	GetStateAPI     gin.HandlerFunc

	// Health
	Health gin.HandlerFunc
}

// NewHandlerBundle wires every route handler to the catalog handler.
func NewHandlerBundle(h *CatalogHandler, siteBaseURL string, health gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		Index:            h.Index,
		ServicePage:      h.ServicePage,
		ServiceStatePage: h.ServiceStatePage,
		StatePage:        h.StatePage,
		Locations:        h.Locations,
		About:            StaticPage("about.html", "About Us"),
		Contact:          StaticPage("contact.html", "Contact Us"),
		Privacy:          StaticPage("privacy.html", "Privacy Policy"),
		Sitemap:          h.Sitemap(siteBaseURL),

		ListServicesAPI: h.ListServicesAPI,
		GetServiceAPI:   h.GetServiceAPI,
		ListStatesAPI:   h.ListStatesAPI,
		GetStateAPI:     h.GetStateAPI,

		Health: health,
	}
}
