package shared

import (
	"time"

	"barber-booking/internal/domain/appointment"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side view types.
type ProviderSnapshot struct {
	ID        uuid.UUID
	Name      string
	Timezone  string
	BufferMin int
}

type ServiceSnapshot struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	Name        string
	DurationMin int
	PriceCents  int64
	Active      bool
}

type AppointmentSnapshot struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	CustomerID uuid.UUID
	ServiceID  uuid.UUID
	Status     appointment.Status
	StartTime  time.Time
	EndTime    time.Time
}
