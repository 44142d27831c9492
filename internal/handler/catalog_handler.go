package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/repository"
	pkgcache "github.com/LostaMasta45/biolink-sub000/pkg/cache"
)

// CatalogHandler serves the pricing catalog (packages and add-ons)
type CatalogHandler struct {
	repo  repository.CatalogRepository
	cache pkgcache.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(repo repository.CatalogRepository, cache pkgcache.Service) *CatalogHandler {
	return &CatalogHandler{repo: repo, cache: cache}
}

// ListPackages godoc
// @Summary      List packages
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.Package}
// @Failure      500  {object}  common.APIResponse
// @Router       /catalog/packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	if h.cache != nil {
		var cached []*domain.Package
		if err := h.cache.GetCatalog(c.Request.Context(), "packages", &cached); err == nil {
			common.SuccessResponse(c, cached)
			return
		}
	}

	data, err := h.repo.ListPackages()
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch packages", err)
		return
	}

	if h.cache != nil {
		_ = h.cache.SetCatalog(c.Request.Context(), "packages", data)
	}

	common.SuccessResponse(c, data)
}

// ListAddons godoc
// @Summary      List add-ons
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.Addon}
// @Failure      500  {object}  common.APIResponse
// @Router       /catalog/addons [get]
func (h *CatalogHandler) ListAddons(c *gin.Context) {
	if h.cache != nil {
		var cached []*domain.Addon
		if err := h.cache.GetCatalog(c.Request.Context(), "addons", &cached); err == nil {
			common.SuccessResponse(c, cached)
			return
		}
	}

	data, err := h.repo.ListAddons()
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch addons", err)
		return
	}

	if h.cache != nil {
		_ = h.cache.SetCatalog(c.Request.Context(), "addons", data)
	}

	common.SuccessResponse(c, data)
}
