package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/service"
	"github.com/LostaMasta45/biolink-sub000/pkg/ginutil"
)

// InvoiceHandler handles HTTP requests for invoices
type InvoiceHandler struct {
	service *service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(service *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// ListInvoices godoc
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page number"  default(1)
// @Param        limit  query  int  false  "Page size"    default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Invoice}
// @Failure      500  {object}  common.APIResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	data, meta, err := h.service.List(page, limit)
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch invoices", err)
		return
	}

	common.SuccessWithMeta(c, data, meta)
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Invoice ID"
// @Success      200  {object}  common.APIResponse{data=domain.Invoice}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid invoice ID", err)
		return
	}

	data, err := h.service.Get(id)
	if err != nil {
		common.ErrorResponse(c, 404, "Invoice not found", err)
		return
	}

	common.SuccessResponse(c, data)
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Description  Creates an invoice with a generated monthly sequence number
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.CreateInvoiceRequest  true  "Invoice payload"
// @Success      201  {object}  common.APIResponse{data=domain.Invoice}
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req domain.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.ErrorResponse(c, 400, "Invalid invoice data", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to create invoice", err)
		return
	}

	common.CreatedResponse(c, data)
}

// CreateFromPosting godoc
// @Summary      Create an invoice from a posting
// @Description  Builds invoice line items from the posting's package and add-ons at current catalog prices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Posting ID"
// @Success      201  {object}  common.APIResponse{data=domain.Invoice}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /invoices/from-posting/{id} [post]
func (h *InvoiceHandler) CreateFromPosting(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid posting ID", err)
		return
	}

	data, err := h.service.FromPosting(id)
	if err != nil {
		if errors.Is(err, common.ErrPostingNotFound) {
			common.ErrorResponse(c, 404, "Posting not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to create invoice", err)
		return
	}

	common.CreatedResponse(c, data)
}

// UpdateInvoiceStatus godoc
// @Summary      Set invoice status
// @Description  Marking an invoice paid records an income entry in the finance ledger once
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                                true  "Invoice ID"
// @Param        request  body      domain.UpdateInvoiceStatusRequest  true  "Target status"
// @Success      200  {object}  common.APIResponse{data=domain.Invoice}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid invoice ID", err)
		return
	}

	var req domain.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.SetStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvoiceNotFound):
			common.ErrorResponse(c, 404, "Invoice not found", err)
		case errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, 400, "Unknown status", err)
		default:
			common.ErrorResponse(c, 500, "Failed to update invoice", err)
		}
		return
	}

	common.SuccessResponse(c, data)
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Invoice ID"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid invoice ID", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, common.ErrInvoiceNotFound) {
			common.ErrorResponse(c, 404, "Invoice not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to delete invoice", err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Invoice deleted successfully"})
}

// ShareInvoice godoc
// @Summary      Share an invoice via WhatsApp
// @Description  Returns the invoice summary message and a wa.me deep link to the client
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Invoice ID"
// @Success      200  {object}  common.APIResponse{data=domain.InvoiceShareResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /invoices/{id}/share [get]
func (h *InvoiceHandler) ShareInvoice(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid invoice ID", err)
		return
	}

	data, err := h.service.Share(id)
	if err != nil {
		if errors.Is(err, common.ErrInvoiceNotFound) {
			common.ErrorResponse(c, 404, "Invoice not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to build share message", err)
		return
	}

	common.SuccessResponse(c, data)
}
