package handlers

import (
	"net/http"
	"strings"

	"workhubb_backend/internal/apperrors"
	"workhubb_backend/internal/dto"
	"workhubb_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService *services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

// Upload accepts a profile photo either as multipart form data
// (field "file", optional "fileName") or as JSON with a base64 payload.
func (h *UploadHandler) Upload(c *gin.Context) {
	contentType := c.GetHeader("Content-Type")

	if strings.Contains(contentType, "multipart/form-data") {
		h.uploadMultipart(c)
		return
	}
	h.uploadBase64(c)
}

func (h *UploadHandler) uploadMultipart(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.ErrNoFileProvided)
		return
	}

	fileName := fileHeader.Filename
	if custom := c.PostForm("fileName"); custom != "" {
		fileName = custom
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	response, err := h.uploadService.UploadImage(
		c.Request.Context(),
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		fileName,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *UploadHandler) uploadBase64(c *gin.Context) {
	var req dto.Base64UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleValidationError(c, err)
		return
	}

	response, err := h.uploadService.UploadBase64(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
