package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gramseva/gramseva-backend/models"
	"github.com/gramseva/gramseva-backend/services"
	"github.com/gramseva/gramseva-backend/utils"
)

type ComplaintHandler struct {
	complaintService services.ComplaintService
}

func NewComplaintHandler(complaintService services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	var body models.CreateComplaintRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, "Please fill out all required fields and upload an image.", nil))
		return
	}

	resp, err := h.complaintService.CreateComplaint(c.Request.Context(), req, &body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.APIResponse(false, "complaint created", resp, http.StatusCreated))
}

func (h *ComplaintHandler) GetMyComplaints(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	resp, err := h.complaintService.GetMyComplaints(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "complaints fetched", resp))
}

func (h *ComplaintHandler) GetMyStats(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	resp, err := h.complaintService.GetMyStats(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "stats fetched", resp))
}

func (h *ComplaintHandler) GetCommunityComplaints(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	resp, err := h.complaintService.GetCommunityComplaints(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "community complaints fetched", resp))
}

func (h *ComplaintHandler) GetComplaintByID(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, services.ErrNotFound)
		return
	}

	resp, err := h.complaintService.GetComplaintByID(c.Request.Context(), req, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "complaint fetched", resp))
}

func (h *ComplaintHandler) UpdateComplaint(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, services.ErrNotFound)
		return
	}

	var body models.UpdateComplaintRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, err.Error(), nil))
		return
	}

	resp, err := h.complaintService.UpdateComplaint(c.Request.Context(), req, id, &body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "complaint updated", resp))
}

func (h *ComplaintHandler) DeleteComplaint(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, services.ErrNotFound)
		return
	}

	if err := h.complaintService.DeleteComplaint(c.Request.Context(), req, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "complaint removed successfully", nil))
}

func (h *ComplaintHandler) CastVote(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, services.ErrNotFound)
		return
	}

	var body models.VoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, err.Error(), nil))
		return
	}

	resp, err := h.complaintService.CastVote(c.Request.Context(), req, id, body.VoteType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "vote recorded", resp))
}

func (h *ComplaintHandler) GetComplaintsForAdmin(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	resp, err := h.complaintService.GetComplaintsForAdmin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "complaints fetched", resp))
}

func (h *ComplaintHandler) GetAdminStats(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	resp, err := h.complaintService.GetAdminStats(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "stats fetched", resp))
}

func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, services.ErrNotFound)
		return
	}

	var body models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, err.Error(), nil))
		return
	}

	resp, err := h.complaintService.UpdateStatus(c.Request.Context(), req, id, body.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "status updated", resp))
}
