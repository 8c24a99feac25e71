package request

import (
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	ProviderID uuid.UUID `json:"provider_id" binding:"required"`
	ServiceID  uuid.UUID `json:"service_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	// StartTime carries an explicit offset (RFC3339); naive timestamps are
	// rejected at bind time.
	StartTime time.Time `json:"start_time" binding:"required"`
}

func (r BookAppointmentRequest) ParseDate() (schedule.Date, error) {
	return schedule.ParseDate(r.Date)
}

type TransitionAppointmentRequest struct {
	Target string `json:"target" binding:"required"`
}

func (r TransitionAppointmentRequest) ParseTarget() (appointment.Status, error) {
	return appointment.NewStatus(r.Target)
}
