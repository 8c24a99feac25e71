package response

import (
	"barber-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type DashboardStatsResponse struct {
	ProviderID     uuid.UUID `json:"providerId"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	TotalCount     int64     `json:"totalCount"`
	ReservedCount  int64     `json:"reservedCount"`
	ConfirmedCount int64     `json:"confirmedCount"`
	CompletedCount int64     `json:"completedCount"`
	CancelledCount int64     `json:"cancelledCount"`
	RevenueCents   int64     `json:"revenueCents"`
}

func FromDashboardStats(s *queries.DashboardStats) *DashboardStatsResponse {
	return &DashboardStatsResponse{
		ProviderID:     s.ProviderID,
		From:           s.From,
		To:             s.To,
		TotalCount:     s.TotalCount,
		ReservedCount:  s.ReservedCount,
		ConfirmedCount: s.ConfirmedCount,
		CompletedCount: s.CompletedCount,
		CancelledCount: s.CancelledCount,
		RevenueCents:   s.RevenueCents,
	}
}
