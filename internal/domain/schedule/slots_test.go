//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"barber-booking/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func window(t *testing.T, loc *time.Location, date, start, end string) schedule.Window {
	t.Helper()
	d, err := schedule.ParseDate(date)
	require.NoError(t, err)
	s, err := schedule.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := schedule.ParseTimeOfDay(end)
	require.NoError(t, err)
	return schedule.Window{Start: d.At(s, loc), End: d.At(e, loc)}
}

func starts(slots []schedule.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start.Format("15:04")
	}
	return out
}

func TestGenerateSlots(t *testing.T) {
	loc := mustLoc(t, "America/Sao_Paulo")

	t.Run("duration plus buffer spacing", func(t *testing.T) {
		// 09:00-12:15, 45min service, 5min buffer: the next start after 11:30
		// would end at 12:20 which exceeds the window, so it is excluded.
		w := window(t, loc, "2025-03-10", "09:00", "12:15")
		slots := schedule.GenerateSlots(w, 45*time.Minute, 5*time.Minute)

		want := []string{"09:00", "09:50", "10:40", "11:30"}
		if diff := cmp.Diff(want, starts(slots)); diff != "" {
			t.Errorf("slot starts mismatch (-want +got):\n%s", diff)
		}
		for _, s := range slots {
			assert.Equal(t, 45*time.Minute, s.End.Sub(s.Start))
		}
	})

	t.Run("zero buffer packs slots back to back", func(t *testing.T) {
		w := window(t, loc, "2025-03-10", "09:00", "12:00")
		slots := schedule.GenerateSlots(w, 30*time.Minute, 0)

		want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
		assert.Equal(t, want, starts(slots))
	})

	t.Run("slot exactly filling the window is kept", func(t *testing.T) {
		w := window(t, loc, "2025-03-10", "09:00", "10:00")
		slots := schedule.GenerateSlots(w, 60*time.Minute, 10*time.Minute)
		require.Len(t, slots, 1)
		assert.Equal(t, w.Start, slots[0].Start)
		assert.Equal(t, w.End, slots[0].End)
	})

	t.Run("window shorter than duration yields nothing", func(t *testing.T) {
		w := window(t, loc, "2025-03-10", "09:00", "09:20")
		assert.Empty(t, schedule.GenerateSlots(w, 30*time.Minute, 0))
	})

	t.Run("non-positive duration yields nothing", func(t *testing.T) {
		w := window(t, loc, "2025-03-10", "09:00", "12:00")
		assert.Empty(t, schedule.GenerateSlots(w, 0, 0))
		assert.Empty(t, schedule.GenerateSlots(w, -15*time.Minute, 0))
	})

	t.Run("negative buffer treated as zero", func(t *testing.T) {
		w := window(t, loc, "2025-03-10", "09:00", "11:00")
		withZero := schedule.GenerateSlots(w, 30*time.Minute, 0)
		withNegative := schedule.GenerateSlots(w, 30*time.Minute, -5*time.Minute)
		assert.Equal(t, starts(withZero), starts(withNegative))
	})

	t.Run("regenerating yields identical slots", func(t *testing.T) {
		w := window(t, loc, "2025-03-10", "09:00", "12:15")
		first := schedule.GenerateSlots(w, 45*time.Minute, 5*time.Minute)
		second := schedule.GenerateSlots(w, 45*time.Minute, 5*time.Minute)
		assert.Equal(t, first, second)
	})
}

func TestFilterAvailable(t *testing.T) {
	loc := mustLoc(t, "America/Sao_Paulo")
	w := window(t, loc, "2025-03-10", "09:00", "12:00")
	candidates := schedule.GenerateSlots(w, 30*time.Minute, 0)

	at := func(hm string) time.Time {
		d, err := schedule.ParseDate("2025-03-10")
		require.NoError(t, err)
		tod, err := schedule.ParseTimeOfDay(hm)
		require.NoError(t, err)
		return d.At(tod, loc)
	}

	t.Run("booked interval removes exactly the overlapping slot", func(t *testing.T) {
		booked := []schedule.Interval{{Start: at("10:00"), End: at("10:30")}}
		got := schedule.FilterAvailable(candidates, booked, time.Time{})

		want := []string{"09:00", "09:30", "10:30", "11:00", "11:30"}
		assert.Equal(t, want, starts(got))
	})

	t.Run("partial overlap blocks both neighbours", func(t *testing.T) {
		booked := []schedule.Interval{{Start: at("10:15"), End: at("10:45")}}
		got := schedule.FilterAvailable(candidates, booked, time.Time{})

		want := []string{"09:00", "09:30", "11:00", "11:30"}
		assert.Equal(t, want, starts(got))
	})

	t.Run("touching intervals do not conflict", func(t *testing.T) {
		// [09:30,10:00) against candidate [10:00,10:30): half-open, no overlap.
		booked := []schedule.Interval{{Start: at("09:30"), End: at("10:00")}}
		got := schedule.FilterAvailable(candidates, booked, time.Time{})

		want := []string{"09:00", "10:00", "10:30", "11:00", "11:30"}
		assert.Equal(t, want, starts(got))
	})

	t.Run("past and present starts excluded when cutoff set", func(t *testing.T) {
		got := schedule.FilterAvailable(candidates, nil, at("10:00"))
		// Start strictly after now: 10:00 itself is gone too.
		want := []string{"10:30", "11:00", "11:30"}
		assert.Equal(t, want, starts(got))
	})

	t.Run("zero cutoff keeps everything", func(t *testing.T) {
		got := schedule.FilterAvailable(candidates, nil, time.Time{})
		assert.Len(t, got, 6)
	})

	t.Run("filtering twice with same inputs is idempotent", func(t *testing.T) {
		booked := []schedule.Interval{{Start: at("11:00"), End: at("11:30")}}
		first := schedule.FilterAvailable(candidates, booked, time.Time{})
		second := schedule.FilterAvailable(candidates, booked, time.Time{})
		assert.Equal(t, first, second)
	})
}

func TestContainsStart(t *testing.T) {
	loc := mustLoc(t, "America/Sao_Paulo")
	w := window(t, loc, "2025-03-10", "09:00", "12:00")
	candidates := schedule.GenerateSlots(w, 30*time.Minute, 0)

	d, _ := schedule.ParseDate("2025-03-10")
	ten, _ := schedule.ParseTimeOfDay("10:00")
	misaligned, _ := schedule.ParseTimeOfDay("10:10")

	assert.True(t, schedule.ContainsStart(candidates, d.At(ten, loc)))
	assert.False(t, schedule.ContainsStart(candidates, d.At(misaligned, loc)))
}
