package dto

import (
	"time"

	"github.com/quikka/quikka-api/internal/models"
)

// BookingListDTO is the trimmed row shape for booking listings.
type BookingListDTO struct {
	ID              uint      `json:"id"`
	Reference       string    `json:"reference"`
	ClientName      string    `json:"client_name"`
	ServiceName     string    `json:"service_name"`
	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	RescheduleCount int       `json:"reschedule_count"`
}

func NewBookingListDTO(b models.Booking) BookingListDTO {
	return BookingListDTO{
		ID:              b.ID,
		Reference:       b.Reference,
		ClientName:      b.ClientName,
		ServiceName:     b.ServiceName,
		AppointmentDate: b.AppointmentDate,
		AppointmentTime: b.AppointmentTime,
		DurationMinutes: b.DurationMinutes,
		Status:          b.Status,
		RescheduleCount: b.RescheduleCount,
	}
}
