package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra/db"
	"barber-booking/internal/infra/readstore"
	"barber-booking/internal/infra/repository"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	maxRetries int
}

func NewPostgresUoW(pool *pgxpool.Pool, maxRetries int) shared.UnitOfWork {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &PostgresUoW{pool: pool, maxRetries: maxRetries}
}

// ReadCommitted prevents dirty reads while allowing concurrent writers; the
// per-provider-day advisory lock provides the stronger ordering bookings need.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !u.shouldRetry(err, attempt) {
			if attempt == u.maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) shouldRetry(err error, attempt int) bool {
	return isRetryableError(err) && attempt < u.maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the sign bit so the modulo stays non-negative
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- safe after masking
	return int64(uval) % n
}

// Only serialization failures and deadlocks are worth retrying. Constraint
// violations like an exclusion conflict are deterministic and must surface.
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	appointmentRepo  shared.AppointmentRepository
	scheduleRepo     shared.ScheduleRepository
	serviceRepo      shared.ServiceRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository()
	}
	return t.appointmentRepo
}

func (t *pgTx) Schedules() shared.ScheduleRepository {
	if t.scheduleRepo == nil {
		t.scheduleRepo = repository.NewScheduleRepository()
	}
	return t.scheduleRepo
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.serviceRepo == nil {
		t.serviceRepo = repository.NewServiceRepository()
	}
	return t.serviceRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository()
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	providerStore    *readstore.ProviderReadStore
	serviceStore     *readstore.ServiceReadStore
	scheduleStore    *readstore.ScheduleReadStore
	appointmentStore *readstore.AppointmentReadStore
}

func (r *commandReads) ProviderByID(ctx context.Context, id uuid.UUID) (*shared.ProviderSnapshot, error) {
	if r.providerStore == nil {
		r.providerStore = readstore.NewProviderReadStore(r.dbtx)
	}
	return r.providerStore.FindByID(ctx, id)
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	if r.serviceStore == nil {
		r.serviceStore = readstore.NewServiceReadStore(r.dbtx)
	}
	return r.serviceStore.FindByID(ctx, id)
}

func (r *commandReads) ActiveRules(ctx context.Context, providerID uuid.UUID) ([]schedule.WorkingHourRule, error) {
	if r.scheduleStore == nil {
		r.scheduleStore = readstore.NewScheduleReadStore(r.dbtx)
	}
	return r.scheduleStore.ActiveRules(ctx, providerID)
}

func (r *commandReads) RuleCount(ctx context.Context, providerID uuid.UUID) (int, error) {
	if r.scheduleStore == nil {
		r.scheduleStore = readstore.NewScheduleReadStore(r.dbtx)
	}
	return r.scheduleStore.RuleCount(ctx, providerID)
}

func (r *commandReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	if r.appointmentStore == nil {
		r.appointmentStore = readstore.NewAppointmentReadStore(r.dbtx)
	}
	return r.appointmentStore.FindSnapshot(ctx, id)
}
