package readstore

import (
	"context"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"
	"barber-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type DashboardReadStore struct {
	db db.DBTX
}

func NewDashboardReadStore(dbtx db.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: dbtx}
}

const aggregateStatsSQL = `
SELECT count(*),
       count(*) FILTER (WHERE status = 'reserved'),
       count(*) FILTER (WHERE status = 'confirmed'),
       count(*) FILTER (WHERE status = 'completed'),
       count(*) FILTER (WHERE status = 'cancelled'),
       COALESCE(sum(price_cents) FILTER (WHERE status = 'completed'), 0)
FROM appointments
WHERE provider_id = $1 AND date BETWEEN $2 AND $3`

// AggregateStats folds the provider's bookings over a closed date range.
// Only completed appointments contribute to revenue.
func (r *DashboardReadStore) AggregateStats(ctx context.Context, providerID uuid.UUID, from, to schedule.Date) (*queries.DashboardStats, error) {
	stats := &queries.DashboardStats{
		ProviderID: providerID,
		From:       from.String(),
		To:         to.String(),
	}
	err := r.db.QueryRow(ctx, aggregateStatsSQL, providerID, from.String(), to.String()).Scan(
		&stats.TotalCount,
		&stats.ReservedCount,
		&stats.ConfirmedCount,
		&stats.CompletedCount,
		&stats.CancelledCount,
		&stats.RevenueCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate dashboard stats", err)
	}
	return stats, nil
}
