package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gramseva/gramseva-backend/models"
	"github.com/gramseva/gramseva-backend/services"
	"github.com/gramseva/gramseva-backend/utils"
)

type AuthenticationHandler struct {
	authService services.AuthenticationService
}

func NewAuthenticationHandler(authService services.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authService: authService}
}

// Register creates a resident account and returns a signed token.
func (h *AuthenticationHandler) Register(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, err.Error(), nil))
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.APIResponse(false, "user registered", resp, http.StatusCreated))
}

func (h *AuthenticationHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, err.Error(), nil))
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "login successful", resp))
}
