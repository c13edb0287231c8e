package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/httpresp"
	"github.com/quikka/quikka-api/internal/middleware"
	ucAvailability "github.com/quikka/quikka-api/internal/usecase/availability"
)

type AvailabilityHandler struct {
	svc *ucAvailability.Service
}

func NewAvailabilityHandler(svc *ucAvailability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

type upsertWindowRequest struct {
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}

	windows, err := h.svc.ListActive(c.Request.Context(), stylistID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_availability", "could not load availability")
		return
	}

	httpresp.List(c, windows)
}

func (h *AvailabilityHandler) Upsert(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}

	weekday, ok := uintParam(c, "weekday")
	if !ok {
		return
	}

	var req upsertWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	w, err := h.svc.Upsert(c.Request.Context(), stylistID, int(weekday), req.StartTime, req.EndTime)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *AvailabilityHandler) Disable(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}

	weekday, ok := uintParam(c, "weekday")
	if !ok {
		return
	}

	disabled, err := h.svc.Disable(c.Request.Context(), stylistID, int(weekday))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	if !disabled {
		httperr.NotFound(c, "window_not_found", "no availability window on that weekday")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "disabled"})
}
