package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/pkg/storage"
)

// maxPosterSize caps poster uploads at 10MB
const maxPosterSize = 10 << 20

// UploadHandler uploads poster images to object storage
type UploadHandler struct {
	s3 *storage.S3Client
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(s3 *storage.S3Client) *UploadHandler {
	return &UploadHandler{s3: s3}
}

// UploadPoster godoc
// @Summary      Upload a poster image
// @Description  Stores the image in object storage and returns its public URL
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Poster image"
// @Success      201  {object}  common.APIResponse{data=storage.UploadResult}
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /upload/poster [post]
func (h *UploadHandler) UploadPoster(c *gin.Context) {
	if h.s3 == nil {
		common.ErrorResponse(c, 503, "Object storage is not configured", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, 400, "Missing file", err)
		return
	}

	if fileHeader.Size > maxPosterSize {
		common.ErrorResponse(c, 400, "File too large (max 10MB)", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		common.ErrorResponse(c, 400, "Only image uploads are allowed", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to read file", err)
		return
	}
	defer file.Close()

	key := storage.GenerateKey("posters", fileHeader.Filename)
	result, err := h.s3.Upload(c.Request.Context(), key, file, contentType, fileHeader.Size)
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to upload file", err)
		return
	}

	common.CreatedResponse(c, result)
}
