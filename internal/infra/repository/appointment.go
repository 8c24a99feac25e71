package repository

import (
	"context"
	"hash/fnv"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"
	"barber-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

const createAppointmentSQL = `
INSERT INTO appointments (
    id, provider_id, customer_id, service_id,
    date, start_time, end_time, status, price_cents, duration_min
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (r *AppointmentRepository) Create(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createAppointmentSQL,
		appt.ID(),
		appt.ProviderID(),
		appt.CustomerID(),
		appt.ServiceID(),
		appt.Date().String(),
		appt.StartTime(),
		appt.EndTime(),
		appt.Status().String(),
		appt.PriceCents(),
		appt.DurationMin(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

const updateAppointmentStatusSQL = `
UPDATE appointments
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status appointment.Status) error {
	tag, err := dbtx.Exec(ctx, updateAppointmentStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

const blockingIntervalsSQL = `
SELECT start_time, end_time
FROM appointments
WHERE provider_id = $1
  AND status <> 'cancelled'
  AND start_time < $3
  AND end_time > $2
ORDER BY start_time`

// BlockingIntervals returns occupied spans intersecting [from, to). Callers
// pass provider-local midnights as instants. Cancelled rows never block.
func (r *AppointmentRepository) BlockingIntervals(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, from, to time.Time) ([]schedule.Interval, error) {
	rows, err := dbtx.Query(ctx, blockingIntervalsSQL, providerID, from, to)
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

const advisoryLockSQL = `SELECT pg_advisory_xact_lock($1)`

// LockProviderDay serializes writers for one (provider, date) pair. The lock
// key hashes both so different providers and different dates never contend.
// Released automatically at transaction end.
func (r *AppointmentRepository) LockProviderDay(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, date schedule.Date) error {
	if _, err := dbtx.Exec(ctx, advisoryLockSQL, providerDayLockKey(providerID, date)); err != nil {
		return infra.WrapRepoErr("failed to acquire provider day lock", err)
	}
	return nil
}

func providerDayLockKey(providerID uuid.UUID, date schedule.Date) int64 {
	h := fnv.New64a()
	h.Write(providerID[:])
	h.Write([]byte(date.String()))
	// #nosec G115 -- advisory lock keys are opaque 64-bit values
	return int64(h.Sum64())
}

const findAppointmentForUpdateSQL = `
SELECT id, provider_id, customer_id, service_id, status, start_time, end_time
FROM appointments
WHERE id = $1
FOR UPDATE`

func (r *AppointmentRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	var (
		snap   shared.AppointmentSnapshot
		status string
	)
	err := dbtx.QueryRow(ctx, findAppointmentForUpdateSQL, id).Scan(
		&snap.ID, &snap.ProviderID, &snap.CustomerID, &snap.ServiceID,
		&status, &snap.StartTime, &snap.EndTime,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment for update", err)
	}

	st, err := appointment.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("appointment has invalid status", err)
	}
	snap.Status = st
	return &snap, nil
}
