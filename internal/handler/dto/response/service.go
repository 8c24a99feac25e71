package response

import (
	"barber-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID                 uuid.UUID `json:"id"`
	ProviderID         uuid.UUID `json:"providerId"`
	Name               string    `json:"name"`
	DurationMin        int       `json:"durationMin"`
	PriceCents         int64     `json:"priceCents"`
	PreviousPriceCents *int64    `json:"previousPriceCents,omitempty"`
	Active             bool      `json:"active"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:                 v.ID,
		ProviderID:         v.ProviderID,
		Name:               v.Name,
		DurationMin:        v.DurationMin,
		PriceCents:         v.PriceCents,
		PreviousPriceCents: v.PreviousPriceCents,
		Active:             v.Active,
	}
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	result := make([]*ServiceResponse, len(views))
	for i, v := range views {
		result[i] = FromServiceView(v)
	}
	return result
}
