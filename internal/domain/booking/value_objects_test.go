//go:build unit

package booking_test

import (
	"testing"
	"time"

	"officegrid/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, startHour, endHour int) booking.TimeSlot {
	t.Helper()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slot, err := booking.NewTimeSlot(day.Add(time.Duration(startHour)*time.Hour), day.Add(time.Duration(endHour)*time.Hour))
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(day.Add(9*time.Hour), day.Add(11*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, slot.Duration())
		assert.Equal(t, day, slot.Date())
	})

	t.Run("zero-length slot rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(day.Add(9*time.Hour), day.Add(9*time.Hour))
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("inverted slot rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(day.Add(11*time.Hour), day.Add(9*time.Hour))
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("multi-day slot rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(day.Add(22*time.Hour), day.Add(26*time.Hour))
		assert.ErrorIs(t, err, booking.ErrSlotSpansDays)
	})

	t.Run("slot ending at midnight allowed", func(t *testing.T) {
		_, err := booking.NewTimeSlot(day.Add(22*time.Hour), day.Add(24*time.Hour))
		assert.NoError(t, err)
	})

	t.Run("offset input normalized to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*3600)
		slot, err := booking.NewTimeSlot(
			time.Date(2026, 3, 10, 23, 0, 0, 0, loc),
			time.Date(2026, 3, 11, 0, 30, 0, 0, loc),
		)
		require.NoError(t, err)
		assert.Equal(t, day.Add(21*time.Hour), slot.Start())
		assert.Equal(t, day.Add(22*time.Hour+30*time.Minute), slot.End())
		assert.Equal(t, day, slot.Date())
	})

	t.Run("offset shifting the interval across UTC midnight rejected", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*3600)
		_, err := booking.NewTimeSlot(
			time.Date(2026, 3, 10, 1, 0, 0, 0, loc),
			time.Date(2026, 3, 10, 3, 0, 0, 0, loc),
		)
		assert.ErrorIs(t, err, booking.ErrSlotSpansDays)
	})

	t.Run("same instant buckets to one date regardless of offset", func(t *testing.T) {
		tokyo := time.FixedZone("UTC+9", 9*3600)
		fromOffset, err := booking.NewTimeSlot(
			time.Date(2026, 3, 10, 18, 0, 0, 0, tokyo),
			time.Date(2026, 3, 10, 20, 0, 0, 0, tokyo),
		)
		require.NoError(t, err)
		fromUTC, err := booking.NewTimeSlot(day.Add(9*time.Hour), day.Add(11*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, fromUTC.Date(), fromOffset.Date())
		assert.True(t, fromUTC.Overlaps(fromOffset))
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a        [2]int
		b        [2]int
		overlaps bool
	}{
		{"identical", [2]int{9, 11}, [2]int{9, 11}, true},
		{"partial overlap", [2]int{9, 11}, [2]int{10, 12}, true},
		{"partial overlap reversed", [2]int{10, 12}, [2]int{9, 11}, true},
		{"a contains b", [2]int{9, 17}, [2]int{11, 12}, true},
		{"b contains a", [2]int{11, 12}, [2]int{9, 17}, true},
		{"touching end-to-start", [2]int{9, 11}, [2]int{11, 13}, false},
		{"touching start-to-end", [2]int{11, 13}, [2]int{9, 11}, false},
		{"disjoint", [2]int{9, 10}, [2]int{14, 15}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustSlot(t, tc.a[0], tc.a[1])
			b := mustSlot(t, tc.b[0], tc.b[1])
			assert.Equal(t, tc.overlaps, a.Overlaps(b))
			assert.Equal(t, tc.overlaps, b.Overlaps(a))
		})
	}
}

func TestTimeSlotConflictsWithAny(t *testing.T) {
	slot := mustSlot(t, 10, 12)
	others := []booking.TimeSlot{
		mustSlot(t, 8, 9),
		mustSlot(t, 12, 14),
	}
	assert.False(t, slot.ConflictsWithAny(others))

	others = append(others, mustSlot(t, 11, 13))
	assert.True(t, slot.ConflictsWithAny(others))
}
