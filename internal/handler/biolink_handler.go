package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/service"
	"github.com/LostaMasta45/biolink-sub000/pkg/ginutil"
)

// BiolinkHandler handles the public bio-link page and its admin CRUD
type BiolinkHandler struct {
	service *service.BiolinkService
}

// NewBiolinkHandler creates a new BiolinkHandler
func NewBiolinkHandler(service *service.BiolinkService) *BiolinkHandler {
	return &BiolinkHandler{service: service}
}

// PublicPage godoc
// @Summary      Public bio-link page
// @Description  Returns the active page and its active links for a slug
// @Tags         biolink
// @Produce      json
// @Param        slug  path  string  true  "Page slug"
// @Success      200  {object}  common.APIResponse{data=domain.BiolinkPage}
// @Failure      404  {object}  common.APIResponse
// @Router       /bio/{slug} [get]
func (h *BiolinkHandler) PublicPage(c *gin.Context) {
	slug := c.Param("slug")

	data, err := h.service.PublicPage(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, common.ErrPageNotFound) {
			common.ErrorResponse(c, 404, "Page not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to fetch page", err)
		return
	}

	common.SuccessResponse(c, data)
}

// TrackClick godoc
// @Summary      Track a link click
// @Description  Increments the click counter and redirects to the link target
// @Tags         biolink
// @Param        slug  path  string  true  "Page slug"
// @Param        id    path  int     true  "Link ID"
// @Success      302
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /bio/{slug}/links/{id}/click [post]
func (h *BiolinkHandler) TrackClick(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid link ID", err)
		return
	}

	url, err := h.service.TrackClick(id)
	if err != nil {
		if errors.Is(err, common.ErrLinkNotFound) {
			common.ErrorResponse(c, 404, "Link not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to track click", err)
		return
	}

	c.Redirect(http.StatusFound, url)
}

// ListPages godoc
// @Summary      List bio-link pages (admin)
// @Tags         biolink
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.BiolinkPage}
// @Failure      500  {object}  common.APIResponse
// @Router       /biolink/pages [get]
func (h *BiolinkHandler) ListPages(c *gin.Context) {
	data, err := h.service.ListPages()
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch pages", err)
		return
	}

	common.SuccessResponse(c, data)
}

// CreatePage godoc
// @Summary      Create a bio-link page (admin)
// @Tags         biolink
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.CreateBiolinkPageRequest  true  "Page payload"
// @Success      201  {object}  common.APIResponse{data=domain.BiolinkPage}
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /biolink/pages [post]
func (h *BiolinkHandler) CreatePage(c *gin.Context) {
	var req domain.CreateBiolinkPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.CreatePage(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.ErrorResponse(c, 400, "Invalid page data", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to create page", err)
		return
	}

	common.CreatedResponse(c, data)
}

// UpdatePage godoc
// @Summary      Update a bio-link page (admin)
// @Tags         biolink
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                              true  "Page ID"
// @Param        request  body      domain.UpdateBiolinkPageRequest  true  "Fields to update"
// @Success      200  {object}  common.APIResponse{data=domain.BiolinkPage}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /biolink/pages/{id} [put]
func (h *BiolinkHandler) UpdatePage(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid page ID", err)
		return
	}

	var req domain.UpdateBiolinkPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.UpdatePage(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, common.ErrPageNotFound) {
			common.ErrorResponse(c, 404, "Page not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to update page", err)
		return
	}

	common.SuccessResponse(c, data)
}

// DeletePage godoc
// @Summary      Delete a bio-link page (admin)
// @Tags         biolink
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Page ID"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /biolink/pages/{id} [delete]
func (h *BiolinkHandler) DeletePage(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid page ID", err)
		return
	}

	if err := h.service.DeletePage(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrPageNotFound) {
			common.ErrorResponse(c, 404, "Page not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to delete page", err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Page deleted successfully"})
}

// CreateLink godoc
// @Summary      Add a link to a page (admin)
// @Tags         biolink
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                              true  "Page ID"
// @Param        request  body      domain.CreateBiolinkLinkRequest  true  "Link payload"
// @Success      201  {object}  common.APIResponse{data=domain.BiolinkLink}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /biolink/pages/{id}/links [post]
func (h *BiolinkHandler) CreateLink(c *gin.Context) {
	pageID, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid page ID", err)
		return
	}

	var req domain.CreateBiolinkLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.CreateLink(c.Request.Context(), pageID, &req)
	if err != nil {
		if errors.Is(err, common.ErrPageNotFound) {
			common.ErrorResponse(c, 404, "Page not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to create link", err)
		return
	}

	common.CreatedResponse(c, data)
}

// UpdateLink godoc
// @Summary      Update a link (admin)
// @Tags         biolink
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                              true  "Link ID"
// @Param        request  body      domain.UpdateBiolinkLinkRequest  true  "Fields to update"
// @Success      200  {object}  common.APIResponse{data=domain.BiolinkLink}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /biolink/links/{id} [put]
func (h *BiolinkHandler) UpdateLink(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid link ID", err)
		return
	}

	var req domain.UpdateBiolinkLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.UpdateLink(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, common.ErrLinkNotFound) {
			common.ErrorResponse(c, 404, "Link not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to update link", err)
		return
	}

	common.SuccessResponse(c, data)
}

// DeleteLink godoc
// @Summary      Delete a link (admin)
// @Tags         biolink
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Link ID"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /biolink/links/{id} [delete]
func (h *BiolinkHandler) DeleteLink(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid link ID", err)
		return
	}

	if err := h.service.DeleteLink(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrLinkNotFound) {
			common.ErrorResponse(c, 404, "Link not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to delete link", err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Link deleted successfully"})
}
