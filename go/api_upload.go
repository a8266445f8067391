package petcareserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	uploadsapp "github.com/petcare/petcare-api/internal/domains/uploads/application"
	uploadsdomain "github.com/petcare/petcare-api/internal/domains/uploads/domain"
)

// UploadFormField is the multipart field carrying the image.
const UploadFormField = "image"

// multipartOverhead leaves room for boundaries and headers around the file part.
const multipartOverhead = 1 << 20

// UploadResponse describes a stored image.
type UploadResponse struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

// UploadAPI implements POST /upload.
type UploadAPI struct {
	service *uploadsapp.Service
}

func NewUploadAPI(service *uploadsapp.Service) UploadAPI {
	return UploadAPI{service: service}
}

// Post /upload
// @Summary Envia uma imagem
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Imagem (.jpg, .jpeg, .png, .gif até 5MB)"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} apierrors.ProblemDetail
// @Router /upload [post]
func (api *UploadAPI) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, uploadsdomain.MaxImageSize+multipartOverhead)
	header, err := c.FormFile(UploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, fmt.Errorf("%w: %w", uploadsapp.ErrInvalidUpload, uploadsdomain.ErrFileTooLarge))
			return
		}
		respondError(c, fmt.Errorf("%w: %w", uploadsapp.ErrInvalidUpload, uploadsdomain.ErrMissingFile))
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	stored, err := api.service.Upload(c.Request.Context(), header.Filename, header.Size, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, UploadResponse{
		URL:          stored.URL,
		Filename:     stored.Filename,
		OriginalName: stored.OriginalName,
		Size:         stored.Size,
	})
}
