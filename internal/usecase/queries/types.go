package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Timestamps serialize as RFC3339 with the
// provider's zone offset; a bare naive date/time never crosses the boundary.
type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AppointmentView struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	CustomerID   uuid.UUID `json:"customer_id"`
	ServiceID    uuid.UUID `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	Date         string    `json:"date"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	PriceCents   int64     `json:"price_cents"`
	DurationMin  int       `json:"duration_min"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AppointmentListItem struct {
	ID          uuid.UUID `json:"id"`
	ServiceName string    `json:"service_name"`
	Date        string    `json:"date"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
}

type ServiceView struct {
	ID                 uuid.UUID `json:"id"`
	ProviderID         uuid.UUID `json:"provider_id"`
	Name               string    `json:"name"`
	DurationMin        int       `json:"duration_min"`
	PriceCents         int64     `json:"price_cents"`
	PreviousPriceCents *int64    `json:"previous_price_cents,omitempty"`
	Active             bool      `json:"active"`
}

// DashboardStats aggregates a provider's bookings over a date range. Only
// completed appointments count as realized revenue.
type DashboardStats struct {
	ProviderID     uuid.UUID `json:"provider_id"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	TotalCount     int64     `json:"total_count"`
	ReservedCount  int64     `json:"reserved_count"`
	ConfirmedCount int64     `json:"confirmed_count"`
	CompletedCount int64     `json:"completed_count"`
	CancelledCount int64     `json:"cancelled_count"`
	RevenueCents   int64     `json:"revenue_cents"`
}
