package appointment

// Status is the appointment lifecycle state. Appointments are created as
// reserved; cancelled and completed are terminal. Records are never deleted,
// so cancellation keeps the audit history while freeing the interval.
type Status string

const (
	StatusReserved  Status = "reserved"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo encodes the lifecycle:
//
//	reserved  -> confirmed | completed | cancelled
//	confirmed -> completed | cancelled
//
// completed may be reached directly from reserved (walk-in finished without
// an explicit confirmation step).
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusReserved:
		return target == StatusConfirmed || target == StatusCompleted || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}

// Blocking reports whether an appointment in this state occupies its
// interval. Cancelled appointments never block availability.
func (s Status) Blocking() bool {
	return s != StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
