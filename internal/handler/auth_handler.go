package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/middleware"
	"github.com/LostaMasta45/biolink-sub000/internal/service"
)

// AuthHandler handles admin authentication
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary      Admin login
// @Description  Exchanges username and password for a token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Login credentials"
// @Success      200  {object}  common.APIResponse{data=domain.LoginResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Login(&req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			common.ErrorResponse(c, 401, "Invalid username or password", nil)
			return
		}
		common.ErrorResponse(c, 500, "Login failed", err)
		return
	}

	common.SuccessResponse(c, data)
}

// Refresh godoc
// @Summary      Refresh access token
// @Description  Exchanges a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      domain.RefreshRequest  true  "Refresh token"
// @Success      200  {object}  common.APIResponse{data=domain.LoginResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req domain.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Refresh(&req)
	if err != nil {
		common.ErrorResponse(c, 401, "Invalid or expired refresh token", err)
		return
	}

	common.SuccessResponse(c, data)
}

// Me godoc
// @Summary      Current admin profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=domain.AdminUser}
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	username := middleware.GetUserID(c)
	if username == "" {
		common.ErrorResponse(c, 401, "Authentication required", nil)
		return
	}

	data, err := h.service.Me(username)
	if err != nil {
		common.ErrorResponse(c, 404, "User not found", err)
		return
	}

	common.SuccessResponse(c, data)
}
