//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"barber-booking/internal/domain/user"
	"barber-booking/internal/handler/dto/request"
	"barber-booking/internal/handler/dto/response"
	"barber-booking/tests/common/authtest"
	"barber-booking/tests/common/dbtest"
	"barber-booking/tests/common/httptest"
	"barber-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	appointmentsURL = "/api/appointments"
	availabilityURL = "/api/providers/%s/availability?service_id=%s&date=%s"
	transitionURL   = "/api/appointments/%s/transition"

	providerTimezone = "America/New_York"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// fixture is one provider with a 09:00-17:00 schedule on the target weekday
// and a single 30-minute service.
type bookingFixture struct {
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	Date       string
	Start      time.Time
	Loc        *time.Location
}

// seedProvider prepares a provider bookable seven days from now. A week out
// keeps the target date safely in the future regardless of wall clock.
func (s *BookingSuite) seedProvider(t *testing.T, email string, bufferMin int) bookingFixture {
	t.Helper()

	loc, err := time.LoadLocation(providerTimezone)
	require.NoError(t, err)

	providerID := dbtest.CreateTestProvider(t, s.DB, email, "Fade District", providerTimezone, bufferMin)
	serviceID := dbtest.CreateTestService(t, s.DB, providerID, "Classic Cut", 30, 3500)

	day := time.Now().In(loc).AddDate(0, 0, 7)
	dbtest.SetWorkingHours(t, s.DB, providerID, day.Weekday(), 9*60, 17*60)

	start := time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, loc)

	return bookingFixture{
		ProviderID: providerID,
		ServiceID:  serviceID,
		Date:       start.Format("2006-01-02"),
		Start:      start,
		Loc:        loc,
	}
}

func (s *BookingSuite) bookRequest(fx bookingFixture) request.BookAppointmentRequest {
	return request.BookAppointmentRequest{
		ProviderID: fx.ProviderID,
		ServiceID:  fx.ServiceID,
		Date:       fx.Date,
		StartTime:  fx.Start,
	}
}

func (s *BookingSuite) fetchSlots(t *testing.T, fx bookingFixture) []response.SlotResponse {
	t.Helper()

	url := fmt.Sprintf(availabilityURL, fx.ProviderID, fx.ServiceID, fx.Date)
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
	require.Equal(t, http.StatusOK, w.Code, "availability request failed: %s", w.Body.String())

	var res response.AvailabilityResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.Slots
}

func containsSlot(slots []response.SlotResponse, start time.Time) bool {
	for _, slot := range slots {
		if slot.Start.Equal(start) {
			return true
		}
	}
	return false
}

// =============================================================================
// TestBookingFlow - availability, booking, lifecycle end to end
// =============================================================================

func (s *BookingSuite) TestBookingFlow() {
	s.Run("Normal case: booked slot disappears and the appointment is retrievable", func() {
		t := s.T()

		fx := s.seedProvider(t, "flow-provider@example.com", 0)
		customerID := dbtest.CreateTestUser(t, s.DB, "flow-customer@example.com", "customer")
		token := authtest.TokenFor(t, s.Config, customerID, user.RoleCustomer)

		// 09:00-17:00 with 30-minute back-to-back slots.
		slots := s.fetchSlots(t, fx)
		require.Len(t, slots, 16)
		require.True(t, containsSlot(slots, fx.Start), "10:00 slot should be offered before booking")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.bookRequest(fx), token)
		require.Equal(t, http.StatusCreated, w.Code, "booking failed: %s", w.Body.String())

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, fx.ProviderID, created.ProviderID)
		require.Equal(t, customerID, created.CustomerID)
		require.Equal(t, "reserved", created.Status)
		require.Equal(t, int64(3500), created.PriceCents)
		require.True(t, created.StartTime.Equal(fx.Start))

		slots = s.fetchSlots(t, fx)
		require.Len(t, slots, 15)
		require.False(t, containsSlot(slots, fx.Start), "booked slot must no longer be offered")

		// Booking queues exactly one outbox notification in the same commit.
		var jobs int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM notification_jobs WHERE status = 'queued' AND topic = 'appointment_reserved'").Scan(&jobs)
		require.NoError(t, err)
		require.Equal(t, 1, jobs)

		detailURL := appointmentsURL + "/" + created.ID.String()
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, token)

		var detail response.AppointmentResponse
		httptest.AssertSuccessResponse(t, dw, http.StatusOK, &detail)
		require.Equal(t, created.ID, detail.ID)
		require.Equal(t, "Classic Cut", detail.ServiceName)
	})

	s.Run("Normal case: reserved appointment can be confirmed", func() {
		t := s.T()

		fx := s.seedProvider(t, "confirm-provider@example.com", 0)
		customerID := dbtest.CreateTestUser(t, s.DB, "confirm-customer@example.com", "customer")
		token := authtest.TokenFor(t, s.Config, customerID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.bookRequest(fx), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		url := fmt.Sprintf(transitionURL, created.ID)
		tw := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.TransitionAppointmentRequest{Target: "confirmed"}, token)

		var confirmed response.AppointmentResponse
		httptest.AssertSuccessResponse(t, tw, http.StatusOK, &confirmed)
		require.Equal(t, "confirmed", confirmed.Status)

		// completed -> confirmed is not a legal transition in reverse; a
		// second confirm is also rejected.
		tw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.TransitionAppointmentRequest{Target: "reserved"}, token)
		httptest.AssertErrorResponse(t, tw2, http.StatusUnprocessableEntity, "Invalid state transition")
	})

	s.Run("Normal case: cancelled appointment frees its slot", func() {
		t := s.T()

		fx := s.seedProvider(t, "cancel-provider@example.com", 0)
		customerID := dbtest.CreateTestUser(t, s.DB, "cancel-customer@example.com", "customer")
		token := authtest.TokenFor(t, s.Config, customerID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.bookRequest(fx), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.False(t, containsSlot(s.fetchSlots(t, fx), fx.Start))

		url := fmt.Sprintf(transitionURL, created.ID)
		tw := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.TransitionAppointmentRequest{Target: "cancelled"}, token)
		require.Equal(t, http.StatusOK, tw.Code, "cancel failed: %s", tw.Body.String())

		require.True(t, containsSlot(s.fetchSlots(t, fx), fx.Start), "cancelled slot should be offered again")

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.bookRequest(fx), token)
		require.Equal(t, http.StatusCreated, w2.Code, "rebooking a cancelled slot failed: %s", w2.Body.String())
	})

	s.Run("Normal case: own bookings appear in the customer list", func() {
		t := s.T()

		fx := s.seedProvider(t, "list-provider@example.com", 0)
		customerID := dbtest.CreateTestUser(t, s.DB, "list-customer@example.com", "customer")
		otherID := dbtest.CreateTestUser(t, s.DB, "list-other@example.com", "customer")
		token := authtest.TokenFor(t, s.Config, customerID, user.RoleCustomer)
		otherToken := authtest.TokenFor(t, s.Config, otherID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.bookRequest(fx), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var mine []response.AppointmentListResponse
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL, nil, token)
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &mine)
		require.Len(t, mine, 1)
		require.Equal(t, "Classic Cut", mine[0].ServiceName)

		var others []response.AppointmentListResponse
		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL, nil, otherToken)
		httptest.AssertSuccessResponse(t, ow, http.StatusOK, &others)
		require.Empty(t, others, "appointments must not leak across customers")
	})
}

// =============================================================================
// TestBookingConflicts - double booking protection
// =============================================================================

func (s *BookingSuite) TestBookingConflicts() {
	s.Run("Error case: second booking of the same slot is rejected", func() {
		t := s.T()

		fx := s.seedProvider(t, "conflict-provider@example.com", 0)
		firstID := dbtest.CreateTestUser(t, s.DB, "conflict-first@example.com", "customer")
		secondID := dbtest.CreateTestUser(t, s.DB, "conflict-second@example.com", "customer")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.bookRequest(fx),
			authtest.TokenFor(t, s.Config, firstID, user.RoleCustomer))
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.bookRequest(fx),
			authtest.TokenFor(t, s.Config, secondID, user.RoleCustomer))
		httptest.AssertErrorResponse(t, w2, http.StatusConflict, "Slot is no longer available")
	})

	s.Run("Error case: concurrent bookings of one slot yield exactly one winner", func() {
		t := s.T()

		fx := s.seedProvider(t, "race-provider@example.com", 0)

		const contenders = 4
		codes := make([]int, contenders)
		tokens := make([]string, contenders)
		for i := range contenders {
			id := dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("race-customer-%d@example.com", i), "customer")
			tokens[i] = authtest.TokenFor(t, s.Config, id, user.RoleCustomer)
		}

		var wg sync.WaitGroup
		for i := range contenders {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.bookRequest(fx), tokens[i])
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Fatalf("unexpected status %d during concurrent booking", code)
			}
		}
		require.Equal(t, 1, created, "exactly one contender must win the slot")
		require.Equal(t, contenders-1, conflicted)

		// The exclusion constraint backstop guarantees a single row as well.
		var rows int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM appointments WHERE provider_id = $1 AND status <> 'cancelled'", fx.ProviderID).Scan(&rows)
		require.NoError(t, err)
		require.Equal(t, 1, rows)
	})
}

// =============================================================================
// TestBookingValidation - request and schedule validation
// =============================================================================

func (s *BookingSuite) TestBookingValidation() {
	s.Run("Auth test: booking without a token is rejected", func() {
		t := s.T()

		fx := s.seedProvider(t, "noauth-provider@example.com", 0)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.bookRequest(fx), "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Error case: start outside working hours is rejected", func() {
		t := s.T()

		fx := s.seedProvider(t, "window-provider@example.com", 0)
		customerID := dbtest.CreateTestUser(t, s.DB, "window-customer@example.com", "customer")
		token := authtest.TokenFor(t, s.Config, customerID, user.RoleCustomer)

		req := s.bookRequest(fx)
		req.StartTime = fx.Start.Add(10 * time.Hour) // 20:00 local

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "outside working hours")
	})

	s.Run("Error case: start off the slot grid is rejected", func() {
		t := s.T()

		fx := s.seedProvider(t, "grid-provider@example.com", 0)
		customerID := dbtest.CreateTestUser(t, s.DB, "grid-customer@example.com", "customer")
		token := authtest.TokenFor(t, s.Config, customerID, user.RoleCustomer)

		req := s.bookRequest(fx)
		req.StartTime = fx.Start.Add(10 * time.Minute)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "not a valid slot")
	})

	s.Run("Error case: unknown service yields 404", func() {
		t := s.T()

		fx := s.seedProvider(t, "missing-provider@example.com", 0)
		customerID := dbtest.CreateTestUser(t, s.DB, "missing-customer@example.com", "customer")
		token := authtest.TokenFor(t, s.Config, customerID, user.RoleCustomer)

		req := s.bookRequest(fx)
		req.ServiceID = uuid.New()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Service not found")
	})

	s.Run("Normal case: provider buffer widens the slot grid", func() {
		t := s.T()

		// 30-minute service with a 15-minute buffer yields 45-minute spacing,
		// eleven candidates in an eight hour day.
		fx := s.seedProvider(t, "buffer-provider@example.com", 15)
		slots := s.fetchSlots(t, fx)
		require.Len(t, slots, 11)
		require.True(t, containsSlot(slots, time.Date(fx.Start.Year(), fx.Start.Month(), fx.Start.Day(), 9, 45, 0, 0, fx.Loc)))
	})
}
