package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/middleware"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/storage"
)

const maxUploadBytes = 5 << 20 // 5 MiB

type ProfileImageHandler struct {
	db    *gorm.DB
	store *storage.ImageStore
}

func NewProfileImageHandler(db *gorm.DB, store *storage.ImageStore) *ProfileImageHandler {
	return &ProfileImageHandler{db: db, store: store}
}

func (h *ProfileImageHandler) Upload(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}

	if !h.store.Enabled() {
		httperr.Write(c, http.StatusServiceUnavailable, "uploads_disabled", "image uploads are not configured")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "multipart field 'image' is required")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "image must be at most 5 MiB")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "could not read upload")
		return
	}
	defer src.Close()

	url, err := h.store.PutProfileImage(c.Request.Context(), stylistID, src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "image must be a valid JPEG or PNG")
		return
	}

	if err := h.db.
		Model(&models.Stylist{}).
		Where("id = ?", stylistID).
		Update("profile_image_url", url).Error; err != nil {
		httperr.Internal(c, "upload_failed", "could not save image URL")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_image_url": url})
}
