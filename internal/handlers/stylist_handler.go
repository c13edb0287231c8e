package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/httpresp"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/timeutil"
	ucBooking "github.com/quikka/quikka-api/internal/usecase/booking"
)

// StylistHandler serves the public, unauthenticated stylist surface:
// directory listing and free-slot lookup for clients picking a time.
type StylistHandler struct {
	db        *gorm.DB
	listSlots *ucBooking.ListSlots
}

func NewStylistHandler(db *gorm.DB, listSlots *ucBooking.ListSlots) *StylistHandler {
	return &StylistHandler{db: db, listSlots: listSlots}
}

func (h *StylistHandler) List(c *gin.Context) {
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}

	var stylists []models.Stylist
	if err := h.db.
		Preload("User").
		Offset(offset).
		Limit(limit).
		Order("id ASC").
		Find(&stylists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "could not load stylists")
		return
	}

	httpresp.List(c, stylists)
}

func (h *StylistHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.Preload("User").First(&stylist, id).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "stylist not found")
		return
	}

	c.JSON(http.StatusOK, stylist)
}

func (h *StylistHandler) Slots(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	date, err := timeutil.ParseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	duration, ok := intQuery(c, "duration", 0)
	if !ok {
		return
	}
	interval, ok := intQuery(c, "interval", 0)
	if !ok {
		return
	}

	slots, err := h.listSlots.Execute(c.Request.Context(), id, date, duration, interval)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date.Format(timeutil.DateLayout),
		"slots": slots,
	})
}
