package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidRule      = errors.New("working hour rule start must be before end")
)

// TimeOfDay is a civil wall-clock time expressed as whole minutes from
// midnight. All slot arithmetic happens in whole minutes.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay accepts "15:04" formatted wall-clock times.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Date is a civil calendar date with no zone attached. Which instant it
// denotes is decided only when combined with an explicit location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Weekday of the civil date. Independent of any zone: the same calendar date
// has the same weekday everywhere.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// At anchors a wall-clock time on this date in the given location.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour(), t.Minute(), 0, 0, loc)
}

// In is midnight of this date in the given location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) Next() Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return DateOf(t)
}

// WorkingHourRule is one weekly opening window owned by a provider. At most
// one active rule exists per (provider, weekday); closed days simply have no
// active rule. Rules are deactivated, never deleted.
type WorkingHourRule struct {
	Weekday time.Weekday
	Start   TimeOfDay
	End     TimeOfDay
	Active  bool
}

func (r WorkingHourRule) Validate() error {
	if r.Start >= r.End {
		return ErrInvalidRule
	}
	return nil
}

// Window is the concrete open interval on one date during which a provider
// accepts appointments.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(start, end time.Time) bool {
	return !start.Before(w.Start) && !end.After(w.End)
}

// Slot is a candidate bookable interval of exactly one service duration.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Interval is an occupied [start, end) span from an existing appointment.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps uses the half-open test: two intervals conflict iff each starts
// before the other ends.
func (i Interval) Overlaps(start, end time.Time) bool {
	return start.Before(i.End) && end.After(i.Start)
}
