//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase/commands"
	"barber-booking/internal/usecase/shared"
	"barber-booking/tests/common/builder"
	queriesmock "barber-booking/tests/mock/queries"
	sharedmock "barber-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeTx routes repository access to gomock doubles so command tests can
// exercise the transaction body without a live pool.
type fakeTx struct {
	appts  *sharedmock.MockAppointmentRepository
	scheds *sharedmock.MockScheduleRepository
	svcs   *sharedmock.MockServiceRepository
	notifs *sharedmock.MockNotificationRepository
	reads  *sharedmock.MockCommandReads
}

func (f *fakeTx) Appointments() shared.AppointmentRepository   { return f.appts }
func (f *fakeTx) Schedules() shared.ScheduleRepository         { return f.scheds }
func (f *fakeTx) Services() shared.ServiceRepository           { return f.svcs }
func (f *fakeTx) Notifications() shared.NotificationRepository { return f.notifs }
func (f *fakeTx) Reads() shared.CommandReads                   { return f.reads }
func (f *fakeTx) DB() db.DBTX                                  { return nil }

type fakeUow struct {
	tx    *fakeTx
	reads *sharedmock.MockCommandReads
}

func (u *fakeUow) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUow) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUow) Reads() shared.CommandReads { return u.reads }

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockReads *sharedmock.MockCommandReads
	tx        *fakeTx
	uow       *fakeUow
	mockViews *queriesmock.MockAppointmentViewRepo
	mockCache *queriesmock.MockStatsCache
	clk       *clock.MockClock
	booking   commands.BookingCommands

	b   *builder.AppointmentBuilder
	loc *time.Location
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.tx = &fakeTx{
		appts:  sharedmock.NewMockAppointmentRepository(s.mockCtrl),
		scheds: sharedmock.NewMockScheduleRepository(s.mockCtrl),
		svcs:   sharedmock.NewMockServiceRepository(s.mockCtrl),
		notifs: sharedmock.NewMockNotificationRepository(s.mockCtrl),
		reads:  s.mockReads,
	}
	s.uow = &fakeUow{tx: s.tx, reads: s.mockReads}
	s.mockViews = queriesmock.NewMockAppointmentViewRepo(s.mockCtrl)
	s.mockCache = queriesmock.NewMockStatsCache(s.mockCtrl)

	s.b = builder.NewAppointmentBuilder()
	s.loc, _ = time.LoadLocation(s.b.Timezone)
	s.clk = clock.NewMockClock(time.Date(2026, time.September, 1, 12, 0, 0, 0, s.loc))

	s.booking = commands.NewBookingCommands(
		s.uow, s.mockViews, s.mockCache, s.clk, config.NewTestConfig(),
		slog.New(slog.DiscardHandler),
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) bookParams() commands.BookParams {
	return commands.BookParams{
		ProviderID: s.b.ProviderID,
		CustomerID: s.b.CustomerID,
		ServiceID:  s.b.ServiceID,
		Date:       s.b.Date,
		Start:      s.b.Start,
	}
}

func (s *BookingCommandsTestSuite) expectLookups() {
	s.mockReads.EXPECT().ProviderByID(gomock.Any(), s.b.ProviderID).
		Return(s.b.BuildProviderSnapshot(), nil)
	s.mockReads.EXPECT().ServiceByID(gomock.Any(), s.b.ServiceID).
		Return(s.b.BuildServiceSnapshot(), nil)
}

func (s *BookingCommandsTestSuite) expectValidationReads(booked []schedule.Interval) {
	s.tx.appts.EXPECT().LockProviderDay(gomock.Any(), gomock.Any(), s.b.ProviderID, s.b.Date).
		Return(nil)
	s.mockReads.EXPECT().RuleCount(gomock.Any(), s.b.ProviderID).Return(1, nil)
	s.mockReads.EXPECT().ActiveRules(gomock.Any(), s.b.ProviderID).
		Return([]schedule.WorkingHourRule{s.b.BuildDayRule()}, nil)
	s.tx.appts.EXPECT().
		BlockingIntervals(gomock.Any(), gomock.Any(), s.b.ProviderID, s.b.Date.In(s.loc), s.b.Date.Next().In(s.loc)).
		Return(booked, nil)
}

// ================================================================================
// TestBook
// ================================================================================

func (s *BookingCommandsTestSuite) TestBook() {
	ctx := context.Background()

	s.Run("success: reserves the slot and enqueues a notification", func() {
		apptID := uuid.New()
		view := s.b.BuildView()
		view.ID = apptID

		s.expectLookups()
		s.expectValidationReads(nil)
		s.tx.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
				s.Equal(s.b.ProviderID, appt.ProviderID())
				s.Equal(appointment.StatusReserved, appt.Status())
				s.True(appt.StartTime().Equal(s.b.Start))
				return apptID, nil
			})
		s.tx.notifs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "appointment_reserved", gomock.Any()).
			Return(nil)
		s.mockCache.EXPECT().Invalidate(gomock.Any(), s.b.ProviderID).Return(nil)
		s.mockViews.EXPECT().FindByID(gomock.Any(), apptID).Return(view, nil)

		got, err := s.booking.Book(ctx, s.bookParams())

		s.NoError(err)
		s.Equal(apptID, got.ID)
	})

	s.Run("error: provider missing", func() {
		s.mockReads.EXPECT().ProviderByID(gomock.Any(), s.b.ProviderID).
			Return(nil, infra.WrapRepoErr("provider not found", nil, infra.KindNotFound))

		_, err := s.booking.Book(ctx, s.bookParams())

		s.ErrorIs(err, errs.ErrProviderNotFound)
	})

	s.Run("error: inactive service", func() {
		snap := s.b.BuildServiceSnapshot()
		snap.Active = false
		s.mockReads.EXPECT().ProviderByID(gomock.Any(), s.b.ProviderID).
			Return(s.b.BuildProviderSnapshot(), nil)
		s.mockReads.EXPECT().ServiceByID(gomock.Any(), s.b.ServiceID).
			Return(snap, nil)

		_, err := s.booking.Book(ctx, s.bookParams())

		s.ErrorIs(err, errs.ErrServiceInactive)
	})

	s.Run("error: start date disagrees with requested date", func() {
		params := s.bookParams()
		params.Start = params.Start.AddDate(0, 0, 1)
		s.expectLookups()

		_, err := s.booking.Book(ctx, params)

		s.ErrorIs(err, errs.ErrInvalidSlot)
	})

	s.Run("error: a wholly past date is rejected", func() {
		// Clock says 2026-09-01; a well-formed request for an earlier date
		// must fail before any schedule work happens.
		params := s.bookParams()
		past := time.Date(2026, time.August, 25, 10, 0, 0, 0, s.loc)
		params.Date = schedule.DateOf(past)
		params.Start = past
		s.expectLookups()

		_, err := s.booking.Book(ctx, params)

		s.ErrorIs(err, errs.ErrInvalidSlot)
	})

	s.Run("error: start not aligned to the slot grid", func() {
		params := s.bookParams()
		params.Start = params.Start.Add(10 * time.Minute)
		s.expectLookups()
		s.tx.appts.EXPECT().LockProviderDay(gomock.Any(), gomock.Any(), s.b.ProviderID, s.b.Date).
			Return(nil)
		s.mockReads.EXPECT().RuleCount(gomock.Any(), s.b.ProviderID).Return(1, nil)
		s.mockReads.EXPECT().ActiveRules(gomock.Any(), s.b.ProviderID).
			Return([]schedule.WorkingHourRule{s.b.BuildDayRule()}, nil)

		_, err := s.booking.Book(ctx, params)

		s.ErrorIs(err, errs.ErrInvalidSlot)
	})

	s.Run("error: start outside the working window", func() {
		params := s.bookParams()
		params.Start = s.b.Date.At(20*60, s.loc)
		s.expectLookups()
		s.tx.appts.EXPECT().LockProviderDay(gomock.Any(), gomock.Any(), s.b.ProviderID, s.b.Date).
			Return(nil)
		s.mockReads.EXPECT().RuleCount(gomock.Any(), s.b.ProviderID).Return(1, nil)
		s.mockReads.EXPECT().ActiveRules(gomock.Any(), s.b.ProviderID).
			Return([]schedule.WorkingHourRule{s.b.BuildDayRule()}, nil)

		_, err := s.booking.Book(ctx, params)

		s.ErrorIs(err, errs.ErrOutsideWorkingHours)
	})

	s.Run("error: no schedule configured", func() {
		s.expectLookups()
		s.tx.appts.EXPECT().LockProviderDay(gomock.Any(), gomock.Any(), s.b.ProviderID, s.b.Date).
			Return(nil)
		s.mockReads.EXPECT().RuleCount(gomock.Any(), s.b.ProviderID).Return(0, nil)

		_, err := s.booking.Book(ctx, s.bookParams())

		s.ErrorIs(err, errs.ErrNoScheduleConfigured)
	})

	s.Run("error: overlapping booking already exists", func() {
		booked := []schedule.Interval{{
			Start: s.b.Start,
			End:   s.b.Start.Add(30 * time.Minute),
		}}
		s.expectLookups()
		s.expectValidationReads(booked)

		_, err := s.booking.Book(ctx, s.bookParams())

		s.ErrorIs(err, errs.ErrSlotNoLongerAvailable)
	})

	s.Run("error: exclusion constraint fires on insert", func() {
		s.expectLookups()
		s.expectValidationReads(nil)
		s.tx.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("overlap", nil, infra.KindConflict))

		_, err := s.booking.Book(ctx, s.bookParams())

		s.ErrorIs(err, errs.ErrSlotNoLongerAvailable)
	})

	s.Run("error: unknown customer maps to not found", func() {
		s.expectLookups()
		s.expectValidationReads(nil)
		s.tx.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("fk violated", nil, infra.KindForeignKeyViolated))

		_, err := s.booking.Book(ctx, s.bookParams())

		s.ErrorIs(err, errs.ErrCustomerNotFound)
	})

	s.Run("error: same-day booking in the past is rejected", func() {
		s.clk.Set(s.b.Date.At(11*60, s.loc))
		defer s.clk.Set(time.Date(2026, time.September, 1, 12, 0, 0, 0, s.loc))

		s.expectLookups()
		s.tx.appts.EXPECT().LockProviderDay(gomock.Any(), gomock.Any(), s.b.ProviderID, s.b.Date).
			Return(nil)
		s.mockReads.EXPECT().RuleCount(gomock.Any(), s.b.ProviderID).Return(1, nil)
		s.mockReads.EXPECT().ActiveRules(gomock.Any(), s.b.ProviderID).
			Return([]schedule.WorkingHourRule{s.b.BuildDayRule()}, nil)

		_, err := s.booking.Book(ctx, s.bookParams())

		s.ErrorIs(err, errs.ErrInvalidSlot)
	})
}

// ================================================================================
// TestTransition
// ================================================================================

func (s *BookingCommandsTestSuite) TestTransition() {
	ctx := context.Background()
	apptID := uuid.New()

	snapshot := func(status appointment.Status) *shared.AppointmentSnapshot {
		return &shared.AppointmentSnapshot{
			ID:         apptID,
			ProviderID: s.b.ProviderID,
			CustomerID: s.b.CustomerID,
			ServiceID:  s.b.ServiceID,
			Status:     status,
			StartTime:  s.b.Start,
			EndTime:    s.b.Start.Add(30 * time.Minute),
		}
	}

	s.Run("success: reserved to confirmed", func() {
		view := s.b.BuildView()
		view.ID = apptID
		view.Status = "confirmed"

		s.tx.appts.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), apptID).
			Return(snapshot(appointment.StatusReserved), nil)
		s.tx.appts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), apptID, appointment.StatusConfirmed).
			Return(nil)
		s.tx.notifs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "appointment_confirmed", gomock.Any()).
			Return(nil)
		s.mockCache.EXPECT().Invalidate(gomock.Any(), s.b.ProviderID).Return(nil)
		s.mockViews.EXPECT().FindByID(gomock.Any(), apptID).Return(view, nil)

		got, err := s.booking.Transition(ctx, apptID, appointment.StatusConfirmed)

		s.NoError(err)
		s.Equal("confirmed", got.Status)
	})

	s.Run("error: terminal state refuses further transitions", func() {
		s.tx.appts.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), apptID).
			Return(snapshot(appointment.StatusCompleted), nil)

		_, err := s.booking.Transition(ctx, apptID, appointment.StatusCancelled)

		s.ErrorIs(err, errs.ErrInvalidStateTransition)
	})

	s.Run("error: unknown target state", func() {
		_, err := s.booking.Transition(ctx, apptID, appointment.Status("frozen"))

		s.ErrorIs(err, errs.ErrInvalidStateTransition)
	})

	s.Run("error: appointment missing", func() {
		s.tx.appts.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), apptID).
			Return(nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound))

		_, err := s.booking.Transition(ctx, apptID, appointment.StatusConfirmed)

		s.ErrorIs(err, errs.ErrAppointmentNotFound)
	})
}
