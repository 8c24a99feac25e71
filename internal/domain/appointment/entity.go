package appointment

import (
	"errors"
	"time"

	"barber-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidTransition   = errors.New("invalid state transition")
	ErrInvalidInterval     = errors.New("appointment end must equal start plus duration")
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrNegativePrice       = errors.New("price cannot be negative")
)

// Appointment is the central booked entity. Price and duration are snapshots
// taken at booking time so later service edits never rewrite history.
type Appointment struct {
	id          uuid.UUID
	providerID  uuid.UUID
	customerID  uuid.UUID
	serviceID   uuid.UUID
	date        schedule.Date
	startTime   time.Time
	endTime     time.Time
	status      Status
	priceCents  int64
	durationMin int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewAppointment creates a reserved appointment. startTime must already be in
// the provider's zone; the end is derived from the duration snapshot, never
// accepted from the caller.
func NewAppointment(
	providerID, customerID, serviceID uuid.UUID,
	date schedule.Date,
	startTime time.Time,
	durationMin int,
	priceCents int64,
) (*Appointment, error) {
	if durationMin <= 0 {
		return nil, ErrNonPositiveDuration
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Appointment{
		id:          uuid.New(),
		providerID:  providerID,
		customerID:  customerID,
		serviceID:   serviceID,
		date:        date,
		startTime:   startTime,
		endTime:     startTime.Add(time.Duration(durationMin) * time.Minute),
		status:      StatusReserved,
		priceCents:  priceCents,
		durationMin: durationMin,
	}, nil
}

func ReconstructAppointment(
	id, providerID, customerID, serviceID uuid.UUID,
	date schedule.Date,
	startTime, endTime time.Time,
	status Status,
	priceCents int64,
	durationMin int,
	createdAt, updatedAt time.Time,
) (*Appointment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !endTime.Equal(startTime.Add(time.Duration(durationMin) * time.Minute)) {
		return nil, ErrInvalidInterval
	}
	return &Appointment{
		id:          id,
		providerID:  providerID,
		customerID:  customerID,
		serviceID:   serviceID,
		date:        date,
		startTime:   startTime,
		endTime:     endTime,
		status:      status,
		priceCents:  priceCents,
		durationMin: durationMin,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// Transition moves the appointment to target, enforcing the state machine.
func (a *Appointment) Transition(target Status) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	a.status = target
	return nil
}

// Interval is the occupied [start, end) span for conflict checks.
func (a *Appointment) Interval() schedule.Interval {
	return schedule.Interval{Start: a.startTime, End: a.endTime}
}

func (a *Appointment) IsBlocking() bool {
	return a.status.Blocking()
}

func (a *Appointment) ID() uuid.UUID         { return a.id }
func (a *Appointment) ProviderID() uuid.UUID { return a.providerID }
func (a *Appointment) CustomerID() uuid.UUID { return a.customerID }
func (a *Appointment) ServiceID() uuid.UUID  { return a.serviceID }
func (a *Appointment) Date() schedule.Date   { return a.date }
func (a *Appointment) StartTime() time.Time  { return a.startTime }
func (a *Appointment) EndTime() time.Time    { return a.endTime }
func (a *Appointment) Status() Status        { return a.status }
func (a *Appointment) PriceCents() int64     { return a.priceCents }
func (a *Appointment) DurationMin() int      { return a.durationMin }
func (a *Appointment) CreatedAt() time.Time  { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time  { return a.updatedAt }
