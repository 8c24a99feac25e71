package schedule

import "time"

// GenerateSlots sweeps the window producing candidate starts. The first
// candidate is the window start; each subsequent start is the previous start
// plus service duration plus buffer. A candidate is kept only while
// start+duration fits inside the window, and generation stops at the first
// candidate that does not fit.
//
// Spacing is a function of exactly these two inputs. No other configured
// interval may influence it: the buffer is spacing between appointments, not
// an alternative duration unit.
func GenerateSlots(w Window, duration, buffer time.Duration) []Slot {
	if duration <= 0 {
		return nil
	}
	if buffer < 0 {
		buffer = 0
	}

	var slots []Slot
	for cur := w.Start; !cur.Add(duration).After(w.End); cur = cur.Add(duration + buffer) {
		slots = append(slots, Slot{Start: cur, End: cur.Add(duration)})
	}
	return slots
}

// FilterAvailable removes candidates that collide with existing non-cancelled
// appointments, and candidates that start at or before notBefore. Pass the
// zero time as notBefore when the requested date is not the provider-local
// today. Order is preserved; the generator already emits a strictly
// increasing sequence, so no deduplication happens here.
func FilterAvailable(candidates []Slot, booked []Interval, notBefore time.Time) []Slot {
	available := make([]Slot, 0, len(candidates))
	for _, c := range candidates {
		if !notBefore.IsZero() && !c.Start.After(notBefore) {
			continue
		}
		if conflicts(c, booked) {
			continue
		}
		available = append(available, c)
	}
	return available
}

func conflicts(c Slot, booked []Interval) bool {
	for _, b := range booked {
		if b.Overlaps(c.Start, c.End) {
			return true
		}
	}
	return false
}

// ContainsStart reports whether start is one of the generated candidate
// starts. Booking re-validates the client-supplied start against this before
// any conflict checks, so a misaligned time can never slip in.
func ContainsStart(candidates []Slot, start time.Time) bool {
	for _, c := range candidates {
		if c.Start.Equal(start) {
			return true
		}
	}
	return false
}
