//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"officegrid/internal/domain/booking"
	"officegrid/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDayToPgtype(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("clock time extracted as microseconds", func(t *testing.T) {
		got := pgconv.TimeOfDayToPgtype(day.Add(21 * time.Hour))
		assert.Equal(t, int64(21*time.Hour/time.Microsecond), got.Microseconds)
		assert.True(t, got.Valid)
	})

	t.Run("midnight start stays zero", func(t *testing.T) {
		got := pgconv.TimeOfDayToPgtype(day)
		assert.Equal(t, int64(0), got.Microseconds)
	})
}

func TestEndTimeOfDayToPgtype(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("regular end unchanged", func(t *testing.T) {
		got := pgconv.EndTimeOfDayToPgtype(day.Add(11 * time.Hour))
		assert.Equal(t, int64(11*time.Hour/time.Microsecond), got.Microseconds)
	})

	t.Run("midnight end stored as 24:00", func(t *testing.T) {
		got := pgconv.EndTimeOfDayToPgtype(day.Add(24 * time.Hour))
		assert.Equal(t, int64(24*time.Hour/time.Microsecond), got.Microseconds)
	})

	t.Run("stored pair stays half-open for a midnight end", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(day.Add(22*time.Hour), day.Add(24*time.Hour))
		require.NoError(t, err)

		start := pgconv.TimeOfDayToPgtype(slot.Start())
		end := pgconv.EndTimeOfDayToPgtype(slot.End())
		assert.Less(t, start.Microseconds, end.Microseconds)

		date := pgconv.DateToPgtype(slot.Date())
		restored, err := booking.NewTimeSlot(
			pgconv.TimeOfDayFromPgtype(date, start),
			pgconv.TimeOfDayFromPgtype(date, end),
		)
		require.NoError(t, err)
		assert.Equal(t, slot.Start(), restored.Start())
		assert.Equal(t, slot.End(), restored.End())
	})
}

func TestTimeOfDayFromPgtype(t *testing.T) {
	date := pgtype.Date{Time: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Valid: true}

	got := pgconv.TimeOfDayFromPgtype(date, pgtype.Time{Microseconds: int64(9 * time.Hour / time.Microsecond), Valid: true})
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), got)

	got = pgconv.TimeOfDayFromPgtype(date, pgtype.Time{Microseconds: int64(24 * time.Hour / time.Microsecond), Valid: true})
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), got)
}
