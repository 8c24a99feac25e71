package queries

import (
	"context"
	"time"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// ListSlots computes the bookable slots for one provider, service and
	// provider-local date. An empty result is a valid answer (closed day or
	// fully booked), distinct from ErrNoScheduleConfigured.
	ListSlots(ctx context.Context, providerID, serviceID uuid.UUID, date schedule.Date) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	reads shared.CommandReads
	appts AppointmentIntervalReads
	clock clock.Clock
}

// AppointmentIntervalReads is the occupied-interval lookup the filter needs.
type AppointmentIntervalReads interface {
	BlockingIntervals(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]schedule.Interval, error)
}

func NewAvailabilityQueries(reads shared.CommandReads, appts AppointmentIntervalReads, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{reads: reads, appts: appts, clock: clk}
}

func (q *availabilityQueriesImpl) ListSlots(ctx context.Context, providerID, serviceID uuid.UUID, date schedule.Date) ([]SlotView, error) {
	prov, err := q.reads.ProviderByID(ctx, providerID)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrProviderNotFound)
	}
	loc, err := time.LoadLocation(prov.Timezone)
	if err != nil {
		return nil, errs.Wrap(err, "provider has invalid timezone")
	}

	svc, err := q.reads.ServiceByID(ctx, serviceID)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrServiceNotFound)
	}
	if !svc.Active || svc.ProviderID != providerID {
		return nil, errs.ErrServiceNotFound
	}

	ruleCount, err := q.reads.RuleCount(ctx, providerID)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrProviderNotFound)
	}
	if ruleCount == 0 {
		return nil, errs.ErrNoScheduleConfigured
	}

	rules, err := q.reads.ActiveRules(ctx, providerID)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrProviderNotFound)
	}

	window, open := schedule.ResolveWindow(rules, date, loc)
	if !open {
		return []SlotView{}, nil
	}

	booked, err := q.appts.BlockingIntervals(ctx, providerID, date.In(loc), date.Next().In(loc))
	if err != nil {
		return nil, mapReadErr(err, errs.ErrProviderNotFound)
	}

	duration := time.Duration(svc.DurationMin) * time.Minute
	buffer := time.Duration(prov.BufferMin) * time.Minute
	candidates := schedule.GenerateSlots(window, duration, buffer)

	// Today-only cutoff: the provider's zone decides what "today" means.
	now := clock.NowIn(q.clock, loc)
	var notBefore time.Time
	if schedule.DateOf(now) == date {
		notBefore = now
	}

	slots := schedule.FilterAvailable(candidates, booked, notBefore)

	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{Start: s.Start, End: s.End}
	}
	return views, nil
}

// mapReadErr translates repository kinds into the caller-facing taxonomy,
// keeping timeouts retryable and everything else a hard store failure.
func mapReadErr(err error, notFound error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindTimeout):
		return errs.Mark(err, errs.ErrTransientStore)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
