package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/middleware"
	"github.com/quikka/quikka-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	resp := gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"phone":      user.Phone,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	}

	if user.Role == models.RoleStylist {
		var stylist models.Stylist
		if err := h.db.Where("user_id = ?", user.ID).First(&stylist).Error; err == nil {
			resp["stylist_profile"] = stylist
		}
	}

	c.JSON(http.StatusOK, resp)
}
