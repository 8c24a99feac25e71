package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase/queries"
	"barber-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	// Book re-derives the authoritative availability at commit time and
	// reserves the slot. A client-supplied start is never trusted without
	// re-validation inside the serialized transaction.
	Book(ctx context.Context, params BookParams) (*queries.AppointmentView, error)
	// Transition moves an appointment through its lifecycle state machine.
	Transition(ctx context.Context, appointmentID uuid.UUID, target appointment.Status) (*queries.AppointmentView, error)
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	views  queries.AppointmentViewRepo
	cache  queries.StatsCache
	clock  clock.Clock
	cfg    config.BookingConfig
	logger *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	views queries.AppointmentViewRepo,
	cache queries.StatsCache,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		views:  views,
		cache:  cache,
		clock:  clk,
		cfg:    cfg.Booking,
		logger: logger,
	}
}

func (c *bookingCommandsImpl) Book(ctx context.Context, params BookParams) (*queries.AppointmentView, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.StoreTimeout)
	defer cancel()

	prov, err := c.uow.Reads().ProviderByID(ctx, params.ProviderID)
	if err != nil {
		return nil, mapStoreErr(err, errs.ErrProviderNotFound)
	}
	loc, err := time.LoadLocation(prov.Timezone)
	if err != nil {
		return nil, errs.Wrap(err, "provider has invalid timezone")
	}

	svc, err := c.uow.Reads().ServiceByID(ctx, params.ServiceID)
	if err != nil {
		return nil, mapStoreErr(err, errs.ErrServiceNotFound)
	}
	if svc.ProviderID != params.ProviderID {
		return nil, errs.ErrServiceNotFound
	}
	if !svc.Active {
		return nil, errs.ErrServiceInactive
	}

	// Normalize the requested start into provider-local time; a start whose
	// civil date disagrees with the requested date is malformed.
	start := params.Start.In(loc)
	if schedule.DateOf(start) != params.Date {
		return nil, errs.ErrInvalidSlot
	}

	// Dates before provider-local today are never bookable; within today the
	// per-slot cutoff under the lock decides.
	if params.Date.Before(schedule.DateOf(clock.NowIn(c.clock, loc))) {
		return nil, errs.ErrInvalidSlot
	}

	var appointmentID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Serialize conflicting writers for this provider-day; bookings for
		// other providers or dates proceed unblocked.
		if lockErr := tx.Appointments().LockProviderDay(ctx, tx.DB(), params.ProviderID, params.Date); lockErr != nil {
			return mapStoreErr(lockErr, errs.ErrTransientStore)
		}

		slot, validErr := c.validateSlot(ctx, tx, prov, svc, params.Date, start, loc)
		if validErr != nil {
			return validErr
		}

		appt, newErr := appointment.NewAppointment(
			params.ProviderID, params.CustomerID, params.ServiceID,
			params.Date, slot.Start, svc.DurationMin, svc.PriceCents,
		)
		if newErr != nil {
			return errs.Mark(newErr, errs.ErrDomainValidation)
		}

		id, createErr := tx.Appointments().Create(ctx, tx.DB(), appt)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindConflict) {
				// Lost the race despite the advisory lock (e.g. lock taken on
				// a different date key for an interval spanning midnight).
				return errs.ErrSlotNoLongerAvailable
			}
			if infra.IsKind(createErr, infra.KindForeignKeyViolated) {
				return errs.ErrCustomerNotFound
			}
			return mapStoreErr(createErr, errs.ErrDatabaseOperationFailed)
		}
		appointmentID = id

		return c.enqueueNotification(ctx, tx, id, "appointment_reserved")
	})
	if err != nil {
		return nil, err
	}

	c.invalidateStats(ctx, params.ProviderID)

	view, err := c.views.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, mapStoreErr(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// validateSlot recomputes window -> candidates -> conflicts under the lock.
func (c *bookingCommandsImpl) validateSlot(
	ctx context.Context,
	tx shared.Tx,
	prov *shared.ProviderSnapshot,
	svc *shared.ServiceSnapshot,
	date schedule.Date,
	start time.Time,
	loc *time.Location,
) (schedule.Slot, error) {
	var zero schedule.Slot

	ruleCount, err := tx.Reads().RuleCount(ctx, prov.ID)
	if err != nil {
		return zero, mapStoreErr(err, errs.ErrDatabaseOperationFailed)
	}
	if ruleCount == 0 {
		return zero, errs.ErrNoScheduleConfigured
	}

	rules, err := tx.Reads().ActiveRules(ctx, prov.ID)
	if err != nil {
		return zero, mapStoreErr(err, errs.ErrDatabaseOperationFailed)
	}

	window, open := schedule.ResolveWindow(rules, date, loc)
	if !open {
		return zero, errs.ErrOutsideWorkingHours
	}

	duration := time.Duration(svc.DurationMin) * time.Minute
	end := start.Add(duration)
	if !window.Contains(start, end) {
		return zero, errs.ErrOutsideWorkingHours
	}

	candidates := schedule.GenerateSlots(window, duration, time.Duration(prov.BufferMin)*time.Minute)
	if !schedule.ContainsStart(candidates, start) {
		return zero, errs.ErrInvalidSlot
	}

	now := clock.NowIn(c.clock, loc)
	if schedule.DateOf(now) == date && !start.After(now) {
		return zero, errs.ErrInvalidSlot
	}

	booked, err := tx.Appointments().BlockingIntervals(ctx, tx.DB(), prov.ID, date.In(loc), date.Next().In(loc))
	if err != nil {
		return zero, mapStoreErr(err, errs.ErrDatabaseOperationFailed)
	}
	for _, b := range booked {
		if b.Overlaps(start, end) {
			return zero, errs.ErrSlotNoLongerAvailable
		}
	}

	return schedule.Slot{Start: start, End: end}, nil
}

func (c *bookingCommandsImpl) Transition(ctx context.Context, appointmentID uuid.UUID, target appointment.Status) (*queries.AppointmentView, error) {
	if !target.IsValid() {
		return nil, errs.ErrInvalidStateTransition
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.StoreTimeout)
	defer cancel()

	var providerID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, findErr := tx.Appointments().FindForUpdate(ctx, tx.DB(), appointmentID)
		if findErr != nil {
			return mapStoreErr(findErr, errs.ErrAppointmentNotFound)
		}
		providerID = snap.ProviderID

		if !snap.Status.CanTransitionTo(target) {
			return errs.ErrInvalidStateTransition
		}

		if updErr := tx.Appointments().UpdateStatus(ctx, tx.DB(), appointmentID, target); updErr != nil {
			return mapStoreErr(updErr, errs.ErrDatabaseOperationFailed)
		}

		return c.enqueueNotification(ctx, tx, appointmentID, "appointment_"+target.String())
	})
	if err != nil {
		return nil, err
	}

	c.invalidateStats(ctx, providerID)

	view, err := c.views.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, mapStoreErr(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) enqueueNotification(ctx context.Context, tx shared.Tx, appointmentID uuid.UUID, topic string) error {
	payload, err := json.Marshal(map[string]any{
		"appointment_id": appointmentID,
		"type":           topic,
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payload); err != nil {
		return mapStoreErr(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// invalidateStats is best effort: a stale dashboard must never fail a booking.
func (c *bookingCommandsImpl) invalidateStats(ctx context.Context, providerID uuid.UUID) {
	if err := c.cache.Invalidate(ctx, providerID); err != nil {
		c.logger.Warn("failed to invalidate dashboard stats cache",
			"provider_id", providerID.String(), "error", err.Error())
	}
}

// mapStoreErr translates repository kinds into the caller-facing taxonomy:
// missing rows become notFound, timeouts stay retryable, the rest is a hard
// store failure.
func mapStoreErr(err error, notFound error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindTimeout):
		return errs.Mark(err, errs.ErrTransientStore)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
