package handlers

import (
	"errors"
	"net/http"

	"llcdirectory/services/catalog"
	"llcdirectory/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListServicesAPI handles GET /api/services.
func (h *CatalogHandler) ListServicesAPI(c *gin.Context) {
	services, err := h.Svc.ListServices(c.Request.Context())
	if err != nil {
		getLogger(c).Error("ListServicesAPI: failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceAPI handles GET /api/services/:slug.
func (h *CatalogHandler) GetServiceAPI(c *gin.Context) {
	slug := c.Param("slug")
	service, err := h.Svc.ServiceBySlug(c.Request.Context(), slug)
	if errors.Is(err, catalog.ErrServiceNotFound) {
		utils.JSONError(c, http.StatusNotFound, "service not found", slug)
		return
	}
	if err != nil {
		getLogger(c).Error("GetServiceAPI: failed to load service", zap.String("slug", slug), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load service", "")
		return
	}
	c.JSON(http.StatusOK, service)
}

// ListStatesAPI handles GET /api/states.
func (h *CatalogHandler) ListStatesAPI(c *gin.Context) {
	states, err := h.Svc.ListStates(c.Request.Context())
	if err != nil {
		getLogger(c).Error("ListStatesAPI: failed to list states", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list states", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"states": states})
}

// GetStateAPI handles GET /api/states/:state.
func (h *CatalogHandler) GetStateAPI(c *gin.Context) {
	ctx := c.Request.Context()
	state := c.Param("state")

	services, err := h.Svc.ServicesByState(ctx, state)
	if err != nil {
		getLogger(c).Error("GetStateAPI: failed to load services", zap.String("state", state), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load services", "")
		return
	}
	businesses, err := h.Svc.LocalBusinessesByState(ctx, state)
	if err != nil {
		getLogger(c).Error("GetStateAPI: failed to load local businesses", zap.String("state", state), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load local businesses", "")
		return
	}
	if len(services) == 0 && len(businesses) == 0 {
		utils.JSONError(c, http.StatusNotFound, "state not found", state)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":           state,
		"services":        services,
		"localBusinesses": businesses,
	})
}
