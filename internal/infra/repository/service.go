package repository

import (
	"context"

	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ServiceRepository struct{}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

const createServiceSQL = `
INSERT INTO services (id, provider_id, name, duration_min, price_cents, active)
VALUES ($1, $2, $3, $4, $5, true)
RETURNING id`

func (r *ServiceRepository) Create(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, name string, durationMin int, priceCents int64) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createServiceSQL, uuid.New(), providerID, name, durationMin, priceCents).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

const updateServicePriceSQL = `
UPDATE services
SET price_cents = $2, previous_price_cents = $3, updated_at = now()
WHERE id = $1`

// UpdatePrice persists both the new price and the displaced previous one so
// listings can show the old price struck through.
func (r *ServiceRepository) UpdatePrice(ctx context.Context, dbtx db.DBTX, id uuid.UUID, priceCents, previousPriceCents int64) error {
	tag, err := dbtx.Exec(ctx, updateServicePriceSQL, id, priceCents, previousPriceCents)
	if err != nil {
		return infra.WrapRepoErr("failed to update service price", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateServiceDurationSQL = `
UPDATE services
SET duration_min = $2, updated_at = now()
WHERE id = $1`

func (r *ServiceRepository) UpdateDuration(ctx context.Context, dbtx db.DBTX, id uuid.UUID, durationMin int) error {
	tag, err := dbtx.Exec(ctx, updateServiceDurationSQL, id, durationMin)
	if err != nil {
		return infra.WrapRepoErr("failed to update service duration", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

const deactivateServiceSQL = `
UPDATE services
SET active = false, updated_at = now()
WHERE id = $1`

// Deactivate retires a service from booking. Rows referenced by appointments
// are never deleted.
func (r *ServiceRepository) Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deactivateServiceSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
