package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gramseva/gramseva-backend/models"
	"github.com/gramseva/gramseva-backend/services"
	"github.com/gramseva/gramseva-backend/utils"
)

type AnnouncementHandler struct {
	announcementService services.AnnouncementService
}

func NewAnnouncementHandler(announcementService services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	var body models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, "Title and content are required.", nil))
		return
	}

	resp, err := h.announcementService.CreateAnnouncement(c.Request.Context(), req, &body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.APIResponse(false, "announcement created", resp, http.StatusCreated))
}

// GetAnnouncements serves both the resident and the admin listing;
// each caller only ever sees their own rural body's notices.
func (h *AnnouncementHandler) GetAnnouncements(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	resp, err := h.announcementService.GetAnnouncements(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "announcements fetched", resp))
}

func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, services.ErrNotFound)
		return
	}

	if err := h.announcementService.DeleteAnnouncement(c.Request.Context(), req, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "announcement removed", nil))
}
