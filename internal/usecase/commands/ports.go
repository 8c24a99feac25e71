package commands

import (
	"time"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/domain/user"

	"github.com/google/uuid"
)

type BookParams struct {
	ProviderID uuid.UUID
	CustomerID uuid.UUID
	ServiceID  uuid.UUID
	Date       schedule.Date
	// Start arrives with an explicit zone from the wire; booking normalizes
	// it into the provider's configured zone before any comparison.
	Start time.Time
}

type UpsertWorkingHoursParams struct {
	ProviderID uuid.UUID
	Rules      []schedule.WorkingHourRule
}

type CreateServiceParams struct {
	ProviderID  uuid.UUID
	Name        string
	DurationMin int
	PriceCents  int64
}

type UpdateServiceParams struct {
	ServiceID uuid.UUID
	// ActorID and ActorRole identify the authenticated caller; only the
	// owning provider or an admin may touch a service.
	ActorID     uuid.UUID
	ActorRole   user.Role
	PriceCents  *int64
	DurationMin *int
	Deactivate  bool
}
