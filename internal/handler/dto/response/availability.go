package response

import (
	"time"

	"barber-booking/internal/usecase/queries"
)

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromSlotViews always materializes a slice so clients receive [] on a
// closed or fully booked day, never null.
func FromSlotViews(date string, views []queries.SlotView) *AvailabilityResponse {
	slots := make([]SlotResponse, len(views))
	for i, v := range views {
		slots[i] = SlotResponse{Start: v.Start, End: v.End}
	}
	return &AvailabilityResponse{Date: date, Slots: slots}
}
