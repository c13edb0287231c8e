package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/middleware"
	"github.com/quikka/quikka-api/internal/models"
)

type SettingsHandler struct {
	repo domain.SettingsRepository
}

func NewSettingsHandler(repo domain.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}

	s, err := h.repo.GetOrDefault(c.Request.Context(), stylistID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_settings", "could not load settings")
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}

	// Binding into the sparse struct is the caller-side filter: fields
	// outside the policy schema never reach the repository.
	var req models.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	s, err := h.repo.Update(c.Request.Context(), stylistID, &req)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}
