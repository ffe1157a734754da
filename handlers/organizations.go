package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gramseva/gramseva-backend/models"
	"github.com/gramseva/gramseva-backend/services"
	"github.com/gramseva/gramseva-backend/utils"
)

type OrganizationHandler struct {
	orgService services.OrganizationService
}

func NewOrganizationHandler(orgService services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// RegisterOrganization bootstraps a rural body and its first admin.
func (h *OrganizationHandler) RegisterOrganization(c *gin.Context) {
	var req models.RegisterOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, err.Error(), nil))
		return
	}

	resp, err := h.orgService.RegisterOrganization(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.APIResponse(false, resp.Message, resp, http.StatusCreated))
}

// ListOrganizations backs the public registration dropdown.
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	resp, err := h.orgService.ListOrganizations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "organizations fetched", resp))
}
