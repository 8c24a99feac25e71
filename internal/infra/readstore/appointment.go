package readstore

import (
	"context"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"
	"barber-booking/internal/usecase/queries"
	"barber-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

const findAppointmentViewSQL = `
SELECT a.id, a.provider_id, p.name, a.customer_id, a.service_id, s.name,
       a.date, a.start_time, a.end_time, a.status, a.price_cents, a.duration_min,
       a.created_at, a.updated_at, p.timezone
FROM appointments a
JOIN providers p ON p.id = a.provider_id
JOIN services s ON s.id = a.service_id
WHERE a.id = $1`

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	var (
		v    queries.AppointmentView
		date time.Time
		tz   string
	)
	err := r.db.QueryRow(ctx, findAppointmentViewSQL, id).Scan(
		&v.ID, &v.ProviderID, &v.ProviderName, &v.CustomerID, &v.ServiceID, &v.ServiceName,
		&date, &v.StartTime, &v.EndTime, &v.Status, &v.PriceCents, &v.DurationMin,
		&v.CreatedAt, &v.UpdatedAt, &tz,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	v.Date = schedule.DateOf(date).String()
	localizeView(&v, tz)
	return &v, nil
}

// localizeView renders instants with the provider's zone offset so clients
// always see provider-local wall clock times.
func localizeView(v *queries.AppointmentView, tz string) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return
	}
	v.StartTime = v.StartTime.In(loc)
	v.EndTime = v.EndTime.In(loc)
	v.CreatedAt = v.CreatedAt.In(loc)
	v.UpdatedAt = v.UpdatedAt.In(loc)
}

const findAppointmentsByProviderDateSQL = `
SELECT a.id, s.name, a.date, a.start_time, a.end_time, a.status, a.price_cents, p.timezone
FROM appointments a
JOIN providers p ON p.id = a.provider_id
JOIN services s ON s.id = a.service_id
WHERE a.provider_id = $1 AND a.date = $2
ORDER BY a.start_time`

func (r *AppointmentReadStore) FindByProviderDate(ctx context.Context, providerID uuid.UUID, date schedule.Date) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, findAppointmentsByProviderDateSQL, providerID, date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by provider date", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

const findAppointmentsByCustomerSQL = `
SELECT a.id, s.name, a.date, a.start_time, a.end_time, a.status, a.price_cents, p.timezone
FROM appointments a
JOIN providers p ON p.id = a.provider_id
JOIN services s ON s.id = a.service_id
WHERE a.customer_id = $1
ORDER BY a.start_time DESC
LIMIT $2`

func (r *AppointmentReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, findAppointmentsByCustomerSQL, customerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by customer", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

func scanListItems(rows pgx.Rows) ([]*queries.AppointmentListItem, error) {
	var items []*queries.AppointmentListItem
	for rows.Next() {
		var (
			item queries.AppointmentListItem
			date time.Time
			tz   string
		)
		if err := rows.Scan(&item.ID, &item.ServiceName, &date, &item.StartTime, &item.EndTime, &item.Status, &item.PriceCents, &tz); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		item.Date = schedule.DateOf(date).String()
		if loc, err := time.LoadLocation(tz); err == nil {
			item.StartTime = item.StartTime.In(loc)
			item.EndTime = item.EndTime.In(loc)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}
	return items, nil
}

const blockingIntervalsSQL = `
SELECT start_time, end_time
FROM appointments
WHERE provider_id = $1
  AND status <> 'cancelled'
  AND start_time < $3
  AND end_time > $2
ORDER BY start_time`

func (r *AppointmentReadStore) BlockingIntervals(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]schedule.Interval, error) {
	rows, err := r.db.Query(ctx, blockingIntervalsSQL, providerID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking intervals", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocking interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocking intervals", err)
	}
	return intervals, nil
}

const findAppointmentSnapshotSQL = `
SELECT id, provider_id, customer_id, service_id, status, start_time, end_time
FROM appointments
WHERE id = $1`

func (r *AppointmentReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	var (
		snap   shared.AppointmentSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, findAppointmentSnapshotSQL, id).Scan(
		&snap.ID, &snap.ProviderID, &snap.CustomerID, &snap.ServiceID,
		&status, &snap.StartTime, &snap.EndTime,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment snapshot", err)
	}

	st, err := appointment.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("appointment has invalid status", err)
	}
	snap.Status = st
	return &snap, nil
}
