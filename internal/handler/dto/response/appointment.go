package response

import (
	"time"

	"barber-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"providerId"`
	ProviderName string    `json:"providerName"`
	CustomerID   uuid.UUID `json:"customerId"`
	ServiceID    uuid.UUID `json:"serviceId"`
	ServiceName  string    `json:"serviceName"`
	Date         string    `json:"date"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	PriceCents   int64     `json:"priceCents"`
	DurationMin  int       `json:"durationMin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type AppointmentListResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceName string    `json:"serviceName"`
	Date        string    `json:"date"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"priceCents"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           v.ID,
		ProviderID:   v.ProviderID,
		ProviderName: v.ProviderName,
		CustomerID:   v.CustomerID,
		ServiceID:    v.ServiceID,
		ServiceName:  v.ServiceName,
		Date:         v.Date,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		Status:       v.Status,
		PriceCents:   v.PriceCents,
		DurationMin:  v.DurationMin,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromAppointmentListItems(items []*queries.AppointmentListItem) []*AppointmentListResponse {
	result := make([]*AppointmentListResponse, len(items))
	for i, item := range items {
		result[i] = &AppointmentListResponse{
			ID:          item.ID,
			ServiceName: item.ServiceName,
			Date:        item.Date,
			StartTime:   item.StartTime,
			EndTime:     item.EndTime,
			Status:      item.Status,
			PriceCents:  item.PriceCents,
		}
	}
	return result
}
