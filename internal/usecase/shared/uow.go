package shared

import (
	"context"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full read-committed transaction for write operations with
	// bounded retry on serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// Reads: command-side validation reads outside any transaction.
	Reads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Schedules() ScheduleRepository
	Services() ServiceRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type AppointmentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status appointment.Status) error
	// BlockingIntervals lists [start,end) spans of non-cancelled appointments
	// for the provider intersecting [from,to). Bounds are instants; callers
	// derive them from provider-local midnights.
	BlockingIntervals(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, from, to time.Time) ([]schedule.Interval, error)
	// LockProviderDay takes the per-(provider,date) advisory lock that
	// linearizes check-then-insert for one provider-day. Held until tx end.
	LockProviderDay(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, date schedule.Date) error
	// FindForUpdate loads an appointment row with a row lock for lifecycle
	// transitions.
	FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*AppointmentSnapshot, error)
}

type ScheduleRepository interface {
	UpsertRule(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, rule schedule.WorkingHourRule) error
	// DeactivateOtherRules turns off every rule whose weekday is not in keep.
	// Rows are kept, never deleted, so a later replace can resurrect them.
	DeactivateOtherRules(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, keep []int32) error
	SetBuffer(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, bufferMin int) error
}

type ServiceRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, name string, durationMin int, priceCents int64) (uuid.UUID, error)
	UpdatePrice(ctx context.Context, dbtx db.DBTX, id uuid.UUID, priceCents, previousPriceCents int64) error
	UpdateDuration(ctx context.Context, dbtx db.DBTX, id uuid.UUID, durationMin int) error
	Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	// CreateJob enqueues an outbox row inside the booking transaction; an
	// external dispatcher owns delivery.
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte) error
}

type CommandReads interface {
	ProviderByID(ctx context.Context, id uuid.UUID) (*ProviderSnapshot, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	ActiveRules(ctx context.Context, providerID uuid.UUID) ([]schedule.WorkingHourRule, error)
	// RuleCount counts all rules, active or not: zero distinguishes "no
	// schedule configured" from "closed that weekday".
	RuleCount(ctx context.Context, providerID uuid.UUID) (int, error)
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
}
