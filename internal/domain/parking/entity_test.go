//go:build unit

package parking_test

import (
	"testing"
	"time"

	"officegrid/internal/domain/parking"
	"officegrid/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employeeAllocation(t *testing.T) *parking.Allocation {
	t.Helper()
	a, err := parking.NewEmployeeAllocation(uuid.New(), "P1", 2, 3, uuid.New(), nil, nil)
	require.NoError(t, err)
	return a
}

func TestNewEmployeeAllocation(t *testing.T) {
	t.Run("reserved without entry", func(t *testing.T) {
		a := employeeAllocation(t)
		assert.Equal(t, parking.TypeEmployee, a.ParkingType())
		assert.True(t, a.IsActive())
		assert.True(t, a.IsOccupying())
		assert.Nil(t, a.EntryTime())
		require.NotNil(t, a.UserID())
	})

	t.Run("empty slot label rejected", func(t *testing.T) {
		_, err := parking.NewEmployeeAllocation(uuid.New(), "", 0, 0, uuid.New(), nil, nil)
		assert.ErrorIs(t, err, parking.ErrEmptySlotLabel)
	})

	t.Run("nil user rejected", func(t *testing.T) {
		_, err := parking.NewEmployeeAllocation(uuid.New(), "P1", 0, 0, uuid.Nil, nil, nil)
		assert.ErrorIs(t, err, parking.ErrMissingUser)
	})
}

func TestNewVisitorAllocation(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("entry stamped immediately", func(t *testing.T) {
		a, err := parking.NewVisitorAllocation(uuid.New(), "V1", 0, 1,
			parking.VisitorInfo{Name: "  Jordan Lee  "}, nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, parking.TypeVisitor, a.ParkingType())
		require.NotNil(t, a.EntryTime())
		assert.Equal(t, now, *a.EntryTime())
		assert.Equal(t, "Jordan Lee", a.Visitor().Name)
	})

	t.Run("short name rejected", func(t *testing.T) {
		_, err := parking.NewVisitorAllocation(uuid.New(), "V1", 0, 1,
			parking.VisitorInfo{Name: " J "}, nil, nil, now)
		assert.ErrorIs(t, err, parking.ErrVisitorNameRequired)
	})

	t.Run("bad phone rejected", func(t *testing.T) {
		phone := "not-a-phone"
		_, err := parking.NewVisitorAllocation(uuid.New(), "V1", 0, 1,
			parking.VisitorInfo{Name: "Jordan Lee", Phone: &phone}, nil, nil, now)
		assert.ErrorIs(t, err, parking.ErrInvalidVisitorPhone)
	})

	t.Run("international phone accepted", func(t *testing.T) {
		phone := "+81 90-1234-5678"
		_, err := parking.NewVisitorAllocation(uuid.New(), "V1", 0, 1,
			parking.VisitorInfo{Name: "Jordan Lee", Phone: &phone}, nil, nil, now)
		assert.NoError(t, err)
	})
}

func TestAllocationRecordEntry(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("stamps entry once", func(t *testing.T) {
		a := employeeAllocation(t)
		require.NoError(t, a.RecordEntry(now))
		require.NotNil(t, a.EntryTime())
		assert.Equal(t, now, *a.EntryTime())

		assert.ErrorIs(t, a.RecordEntry(now.Add(time.Minute)), parking.ErrEntryAlreadyRecorded)
	})

	t.Run("inactive allocation rejected", func(t *testing.T) {
		a := employeeAllocation(t)
		require.NoError(t, a.RecordEntry(now))
		_, err := a.RecordExit(now.Add(time.Hour))
		require.NoError(t, err)

		assert.ErrorIs(t, a.RecordEntry(now), parking.ErrAllocationInactive)
	})
}

func TestAllocationRecordExit(t *testing.T) {
	entry := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("releases the slot and floors the duration", func(t *testing.T) {
		a := employeeAllocation(t)
		clk := clock.NewMockClock(entry)
		require.NoError(t, a.RecordEntry(clk.Now()))

		clk.Add(90*time.Minute + 59*time.Second)
		history, err := a.RecordExit(clk.Now())
		require.NoError(t, err)
		assert.Equal(t, 90, history.DurationMinutes)
		assert.Equal(t, entry, history.EntryTime)
		assert.Equal(t, a.ID(), history.AllocationID)
		assert.Equal(t, "P1", history.SlotLabel)
		assert.False(t, a.IsActive())
		assert.False(t, a.IsOccupying())
	})

	t.Run("exit without entry rejected", func(t *testing.T) {
		a := employeeAllocation(t)
		_, err := a.RecordExit(entry)
		assert.ErrorIs(t, err, parking.ErrNoEntryRecorded)
	})

	t.Run("exit before entry rejected", func(t *testing.T) {
		a := employeeAllocation(t)
		require.NoError(t, a.RecordEntry(entry))
		_, err := a.RecordExit(entry.Add(-time.Minute))
		assert.ErrorIs(t, err, parking.ErrExitBeforeEntry)
	})

	t.Run("double exit rejected", func(t *testing.T) {
		a := employeeAllocation(t)
		require.NoError(t, a.RecordEntry(entry))
		_, err := a.RecordExit(entry.Add(time.Hour))
		require.NoError(t, err)

		_, err = a.RecordExit(entry.Add(2 * time.Hour))
		assert.ErrorIs(t, err, parking.ErrAllocationInactive)
	})
}
