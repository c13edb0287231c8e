package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/dto"
	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/middleware"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/timeutil"
	ucBooking "github.com/quikka/quikka-api/internal/usecase/booking"
)

type BookingHandler struct {
	db *gorm.DB

	create     *ucBooking.CreateBooking
	update     *ucBooking.UpdateBooking
	status     *ucBooking.UpdateStatus
	reschedule *ucBooking.RescheduleBooking
	remove     *ucBooking.DeleteBooking
}

func NewBookingHandler(
	db *gorm.DB,
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBooking,
	status *ucBooking.UpdateStatus,
	reschedule *ucBooking.RescheduleBooking,
	remove *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		db:         db,
		create:     create,
		update:     update,
		status:     status,
		reschedule: reschedule,
		remove:     remove,
	}
}

// --------- Requests ---------

type createBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"omitempty,email"`
	ClientPhone string `json:"client_phone"`

	ServiceName        string `json:"service_name" binding:"required"`
	ServiceDescription string `json:"service_description"`

	Date            string `json:"appointment_date" binding:"required"`
	Time            string `json:"appointment_time" binding:"required,hhmm"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`

	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Notes    string  `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type rescheduleRequest struct {
	Date   string `json:"appointment_date" binding:"required"`
	Time   string `json:"appointment_time" binding:"required,hhmm"`
	Reason string `json:"reason"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}
	userIDVal, _ := c.Get(middleware.ContextUserID)

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		StylistID: stylistID,
		ActorID:   userIDVal.(uint),

		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,

		ServiceName:        req.ServiceName,
		ServiceDescription: req.ServiceDescription,

		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,

		Price:    req.Price,
		Currency: req.Currency,
		Notes:    req.Notes,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}

	q := h.db.Where("stylist_id = ?", stylistID)

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := timeutil.ParseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
			return
		}
		q = q.Where("appointment_date = ?", date.Format(timeutil.DateLayout))
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Model(&models.Booking{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "could not load bookings")
		return
	}

	var bookings []models.Booking
	if err := q.
		Offset(offset).
		Limit(limit).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "could not load bookings")
		return
	}

	items := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, dto.NewBookingListDTO(b))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   items,
		"total":  total,
		"offset": offset,
		"limit":  limit,
	})
}

func (h *BookingHandler) Get(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var b models.Booking
	if err := h.db.
		Where("stylist_id = ?", stylistID).
		First(&b, id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "booking not found")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Update(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req ucBooking.UpdateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.update.Execute(c.Request.Context(), id, stylistID, req)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	userIDVal, _ := c.Get(middleware.ContextUserID)

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.status.Execute(
		c.Request.Context(),
		id,
		stylistID,
		domain.Status(req.Status),
		userIDVal.(uint),
		req.Reason,
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	userIDVal, _ := c.Get(middleware.ContextUserID)

	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.reschedule.Execute(c.Request.Context(), ucBooking.RescheduleInput{
		BookingID: id,
		StylistID: stylistID,
		ActorID:   userIDVal.(uint),
		NewDate:   req.Date,
		NewTime:   req.Time,
		Reason:    req.Reason,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, stylistID); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *BookingHandler) History(c *gin.Context) {
	stylistID, ok := middleware.RequireStylist(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	// Scope the lookup: history is only visible to the booking's stylist.
	var b models.Booking
	if err := h.db.
		Where("stylist_id = ?", stylistID).
		First(&b, id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "booking not found")
		return
	}

	var entries []models.BookingStatusHistory
	if err := h.db.
		Where("booking_id = ?", b.ID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_history", "could not load history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries, "total": len(entries)})
}
