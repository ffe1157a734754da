package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gramseva/gramseva-backend/models"
	"github.com/gramseva/gramseva-backend/services"
	"github.com/gramseva/gramseva-backend/utils"
)

// UserHandler handles profile and resident-management endpoints
type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	resp, err := h.userService.GetProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "profile fetched", resp))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	var body models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, err.Error(), nil))
		return
	}

	resp, err := h.userService.UpdateProfile(c.Request.Context(), req, &body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "profile updated", resp))
}

func (h *UserHandler) GetResidents(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	resp, err := h.userService.GetResidents(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "residents fetched", resp))
}

func (h *UserHandler) GetResidentByID(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, services.ErrNotFound)
		return
	}

	resp, err := h.userService.GetResidentByID(c.Request.Context(), req, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "resident fetched", resp))
}

func (h *UserHandler) UpdateResident(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, services.ErrNotFound)
		return
	}

	var body models.UpdateResidentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, err.Error(), nil))
		return
	}

	resp, err := h.userService.UpdateResident(c.Request.Context(), req, id, &body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "resident updated", resp))
}

func (h *UserHandler) DeleteResident(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, services.ErrNotFound)
		return
	}

	if err := h.userService.DeleteResident(c.Request.Context(), req, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "resident removed successfully", nil))
}
