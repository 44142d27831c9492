package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/service"
)

// ClientHandler serves client views aggregated from the posting history
type ClientHandler struct {
	service *service.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(service *service.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// ListClients godoc
// @Summary      List clients
// @Description  Aggregates postings into one client row per WhatsApp number with tier classification
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]domain.AggregatedClient}
// @Failure      500  {object}  common.APIResponse
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	data, err := h.service.List(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch clients", err)
		return
	}

	common.SuccessResponse(c, data)
}

// GetClient godoc
// @Summary      Client detail
// @Description  Returns the aggregated client plus its full posting history
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        number  path  string  true  "WhatsApp number (any format, normalized on lookup)"
// @Success      200  {object}  common.APIResponse{data=domain.ClientDetail}
// @Failure      404  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /clients/{number} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	number := c.Param("number")

	data, err := h.service.Detail(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, common.ErrClientNotFound) {
			common.ErrorResponse(c, 404, "Client not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to fetch client", err)
		return
	}

	common.SuccessResponse(c, data)
}
