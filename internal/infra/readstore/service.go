package readstore

import (
	"context"

	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"
	"barber-booking/internal/usecase/queries"
	"barber-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

const findServiceByIDSQL = `
SELECT id, provider_id, name, duration_min, price_cents, active
FROM services
WHERE id = $1`

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var snap shared.ServiceSnapshot
	err := r.db.QueryRow(ctx, findServiceByIDSQL, id).Scan(
		&snap.ID, &snap.ProviderID, &snap.Name, &snap.DurationMin, &snap.PriceCents, &snap.Active,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &snap, nil
}

const listServicesByProviderSQL = `
SELECT id, provider_id, name, duration_min, price_cents, previous_price_cents, active
FROM services
WHERE provider_id = $1
  AND ($2 OR active)
ORDER BY name`

// ListByProvider returns the provider's catalog. Inactive services only
// appear when includeInactive is set (the provider's own management view).
func (r *ServiceReadStore) ListByProvider(ctx context.Context, providerID uuid.UUID, includeInactive bool) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, listServicesByProviderSQL, providerID, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var v queries.ServiceView
		if err := rows.Scan(&v.ID, &v.ProviderID, &v.Name, &v.DurationMin, &v.PriceCents, &v.PreviousPriceCents, &v.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return views, nil
}
