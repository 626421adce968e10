package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed. Cancelled and
// completed bookings never change state again, and never block a time slot.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Blocks reports whether a booking in this status occupies its time slot for
// conflict purposes.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusConfirmed
}
