package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/service"
	"github.com/LostaMasta45/biolink-sub000/pkg/ginutil"
)

// LedgerHandler handles HTTP requests for the finance ledger
type LedgerHandler struct {
	service *service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(service *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// ListEntries godoc
// @Summary      List ledger entries
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        month  query  string  false  "Filter by month (YYYY-MM)"
// @Param        type   query  string  false  "Filter by entry type (income, expense)"
// @Success      200  {object}  common.APIResponse{data=[]domain.LedgerEntry}
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /ledger [get]
func (h *LedgerHandler) ListEntries(c *gin.Context) {
	month := c.Query("month")
	entryType := domain.EntryType(c.Query("type"))

	data, err := h.service.List(month, entryType)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.ErrorResponse(c, 400, "Unknown entry type", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to fetch ledger entries", err)
		return
	}

	common.SuccessResponse(c, data)
}

// CreateEntry godoc
// @Summary      Create a ledger entry
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.CreateLedgerEntryRequest  true  "Entry payload"
// @Success      201  {object}  common.APIResponse{data=domain.LedgerEntry}
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /ledger [post]
func (h *LedgerHandler) CreateEntry(c *gin.Context) {
	var req domain.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.ErrorResponse(c, 400, "Invalid entry data", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to create ledger entry", err)
		return
	}

	common.CreatedResponse(c, data)
}

// UpdateEntry godoc
// @Summary      Update a ledger entry
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                              true  "Entry ID"
// @Param        request  body      domain.UpdateLedgerEntryRequest  true  "Fields to update"
// @Success      200  {object}  common.APIResponse{data=domain.LedgerEntry}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /ledger/{id} [put]
func (h *LedgerHandler) UpdateEntry(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid entry ID", err)
		return
	}

	var req domain.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEntryNotFound):
			common.ErrorResponse(c, 404, "Entry not found", err)
		case errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, 400, "Invalid entry data", err)
		default:
			common.ErrorResponse(c, 500, "Failed to update ledger entry", err)
		}
		return
	}

	common.SuccessResponse(c, data)
}

// DeleteEntry godoc
// @Summary      Delete a ledger entry
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Entry ID"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /ledger/{id} [delete]
func (h *LedgerHandler) DeleteEntry(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid entry ID", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, common.ErrEntryNotFound) {
			common.ErrorResponse(c, 404, "Entry not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to delete ledger entry", err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Entry deleted successfully"})
}

// Summary godoc
// @Summary      Monthly ledger summary
// @Description  Returns per-month income, expense and net totals, newest month first
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=domain.LedgerSummaryResponse}
// @Failure      500  {object}  common.APIResponse
// @Router       /ledger/summary [get]
func (h *LedgerHandler) Summary(c *gin.Context) {
	data, err := h.service.Summary()
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to build ledger summary", err)
		return
	}

	common.SuccessResponse(c, data)
}
