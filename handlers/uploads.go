package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gramseva/gramseva-backend/models"
	"github.com/gramseva/gramseva-backend/services"
	"github.com/gramseva/gramseva-backend/utils"
)

type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage accepts a multipart "image" field and proxies it to the
// object store, returning the hosted URL.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, "No image file provided", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, "failed to read uploaded file", nil))
		return
	}
	defer file.Close()

	url, err := h.uploadService.UploadImage(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, "Image uploaded successfully", models.UploadResponse{
		Message:  "Image uploaded successfully",
		ImageURL: url,
	}))
}
