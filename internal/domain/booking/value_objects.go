package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimeSlot = errors.New("end time must be strictly after start time")
	ErrSlotSpansDays   = errors.New("time slot must stay within one booking date")
)

// TimeSlot is a half-open interval [start, end) on a single booking date.
// Zero-length slots are rejected at construction, not treated as "no overlap".
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	// Booking dates are UTC days. Normalizing here keeps date bucketing and
	// the persisted wall-clock times consistent no matter what offset the
	// caller supplied.
	start = start.UTC()
	end = end.UTC()

	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	// A slot belongs to one booking date; an end exactly at the following
	// midnight still counts as the same date.
	startDay := start.Truncate(24 * time.Hour)
	endDay := end.Add(-time.Nanosecond).Truncate(24 * time.Hour)
	if !startDay.Equal(endDay) {
		return TimeSlot{}, ErrSlotSpansDays
	}

	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

// Date returns the booking date the slot belongs to (midnight UTC of start).
func (ts TimeSlot) Date() time.Time {
	return time.Date(ts.start.Year(), ts.start.Month(), ts.start.Day(), 0, 0, 0, 0, time.UTC)
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps implements the canonical half-open interval test: [s1,e1) and
// [s2,e2) overlap iff s1 < e2 && s2 < e1. Touching endpoints do not overlap.
// This single predicate backs desk, conference-room and cafeteria bookings
// alike; it is deliberately two-sided so a slot that fully contains another
// is still detected.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// ConflictsWithAny reports whether the slot overlaps any of the given slots.
func (ts TimeSlot) ConflictsWithAny(others []TimeSlot) bool {
	for _, other := range others {
		if ts.Overlaps(other) {
			return true
		}
	}
	return false
}
