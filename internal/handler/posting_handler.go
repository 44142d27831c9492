package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/service"
	"github.com/LostaMasta45/biolink-sub000/pkg/ginutil"
)

// PostingHandler handles HTTP requests for the posting queue
type PostingHandler struct {
	service *service.PostingService
}

// NewPostingHandler creates a new PostingHandler
func NewPostingHandler(service *service.PostingService) *PostingHandler {
	return &PostingHandler{service: service}
}

// ListPostings godoc
// @Summary      List postings
// @Description  Returns the full posting queue ordered by schedule
// @Tags         postings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.PostingResponse}
// @Failure      500  {object}  common.APIResponse
// @Router       /postings [get]
func (h *PostingHandler) ListPostings(c *gin.Context) {
	data, err := h.service.List()
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch postings", err)
		return
	}

	common.SuccessResponse(c, data)
}

// GetPosting godoc
// @Summary      Get a posting
// @Tags         postings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Posting ID"
// @Success      200  {object}  common.APIResponse{data=domain.PostingResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /postings/{id} [get]
func (h *PostingHandler) GetPosting(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid posting ID", err)
		return
	}

	data, err := h.service.Get(id)
	if err != nil {
		common.ErrorResponse(c, 404, "Posting not found", err)
		return
	}

	common.SuccessResponse(c, data)
}

// CreatePosting godoc
// @Summary      Create a posting
// @Description  Creates a new posting as draft with the price snapshotted from the catalog
// @Tags         postings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.CreatePostingRequest  true  "Posting payload"
// @Success      201  {object}  common.APIResponse{data=domain.PostingResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /postings [post]
func (h *PostingHandler) CreatePosting(c *gin.Context) {
	var req domain.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, 400, "Invalid posting data", err)
		case errors.Is(err, common.ErrPackageNotFound):
			common.ErrorResponse(c, 400, "Unknown package", err)
		default:
			common.ErrorResponse(c, 500, "Failed to create posting", err)
		}
		return
	}

	common.CreatedResponse(c, data)
}

// UpdatePosting godoc
// @Summary      Update a posting
// @Description  Applies partial changes and re-snapshots the price when the package or add-ons change
// @Tags         postings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                          true  "Posting ID"
// @Param        request  body      domain.UpdatePostingRequest  true  "Fields to update"
// @Success      200  {object}  common.APIResponse{data=domain.PostingResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /postings/{id} [put]
func (h *PostingHandler) UpdatePosting(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid posting ID", err)
		return
	}

	var req domain.UpdatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrPostingNotFound):
			common.ErrorResponse(c, 404, "Posting not found", err)
		case errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, 400, "Invalid posting data", err)
		case errors.Is(err, common.ErrPackageNotFound):
			common.ErrorResponse(c, 400, "Unknown package", err)
		default:
			common.ErrorResponse(c, 500, "Failed to update posting", err)
		}
		return
	}

	common.SuccessResponse(c, data)
}

// UpdateStatus godoc
// @Summary      Set posting status
// @Description  Sets the posting to any valid status, including moving backwards
// @Tags         postings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                         true  "Posting ID"
// @Param        request  body      domain.UpdateStatusRequest  true  "Target status"
// @Success      200  {object}  common.APIResponse{data=domain.PostingResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /postings/{id}/status [patch]
func (h *PostingHandler) UpdateStatus(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid posting ID", err)
		return
	}

	var req domain.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.SetStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrPostingNotFound):
			common.ErrorResponse(c, 404, "Posting not found", err)
		case errors.Is(err, common.ErrInvalidStatus):
			common.ErrorResponse(c, 400, "Unknown status", err)
		default:
			common.ErrorResponse(c, 500, "Failed to update status", err)
		}
		return
	}

	common.SuccessResponse(c, data)
}

// AdvanceStatus godoc
// @Summary      Advance posting status
// @Description  Moves the posting one step forward in the workflow (draft to queued, queued to posted)
// @Tags         postings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Posting ID"
// @Success      200  {object}  common.APIResponse{data=domain.PostingResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /postings/{id}/advance [post]
func (h *PostingHandler) AdvanceStatus(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid posting ID", err)
		return
	}

	data, err := h.service.QuickAdvance(id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrPostingNotFound):
			common.ErrorResponse(c, 404, "Posting not found", err)
		case errors.Is(err, common.ErrStatusTerminal):
			common.ErrorResponse(c, 409, "Posting is already in a terminal status", err)
		default:
			common.ErrorResponse(c, 500, "Failed to advance status", err)
		}
		return
	}

	common.SuccessResponse(c, data)
}

// DeletePosting godoc
// @Summary      Delete a posting
// @Tags         postings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Posting ID"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /postings/{id} [delete]
func (h *PostingHandler) DeletePosting(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid posting ID", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, common.ErrPostingNotFound) {
			common.ErrorResponse(c, 404, "Posting not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to delete posting", err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Posting deleted successfully"})
}
