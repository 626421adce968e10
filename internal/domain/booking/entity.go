package booking

import (
	"errors"
	"time"

	"officegrid/internal/domain/floorplan"

	"github.com/google/uuid"
)

var (
	ErrTerminalStatus  = errors.New("booking is in a terminal state")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrEmptyLabel      = errors.New("resource label is required")
	ErrInvalidCapacity = errors.New("party size must be at least 1")
)

// Booking reserves one named resource (desk, conference room or cafeteria
// table) for a date and time window. It records the floor plan version it was
// validated against for audit; later layout churn never rewrites bookings.
type Booking struct {
	id            uuid.UUID
	floorPlanID   uuid.UUID
	planVersion   int
	resourceType  floorplan.CellType
	resourceLabel string
	row           int
	col           int
	userID        uuid.UUID
	slot          TimeSlot
	status        Status
	partySize     *int
	notes         *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	floorPlanID uuid.UUID,
	planVersion int,
	resourceType floorplan.CellType,
	resourceLabel string,
	row, col int,
	userID uuid.UUID,
	slot TimeSlot,
	partySize *int,
	notes *string,
) (*Booking, error) {
	if resourceLabel == "" {
		return nil, ErrEmptyLabel
	}
	if partySize != nil && *partySize < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Booking{
		id:            uuid.New(),
		floorPlanID:   floorPlanID,
		planVersion:   planVersion,
		resourceType:  resourceType,
		resourceLabel: resourceLabel,
		row:           row,
		col:           col,
		userID:        userID,
		slot:          slot,
		status:        StatusConfirmed,
		partySize:     partySize,
		notes:         notes,
	}, nil
}

func ReconstructBooking(
	id, floorPlanID uuid.UUID,
	planVersion int,
	resourceType floorplan.CellType,
	resourceLabel string,
	row, col int,
	userID uuid.UUID,
	slot TimeSlot,
	status Status,
	partySize *int,
	notes *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		floorPlanID:   floorPlanID,
		planVersion:   planVersion,
		resourceType:  resourceType,
		resourceLabel: resourceLabel,
		row:           row,
		col:           col,
		userID:        userID,
		slot:          slot,
		status:        status,
		partySize:     partySize,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Reschedule moves the booking to a new slot on the same resource. The
// caller re-runs the overlap check (excluding this booking's own id) before
// persisting.
func (b *Booking) Reschedule(slot TimeSlot) error {
	if b.status.IsTerminal() {
		return ErrTerminalStatus
	}
	b.slot = slot
	return nil
}

func (b *Booking) UpdateNotes(notes *string) error {
	if b.status.IsTerminal() {
		return ErrTerminalStatus
	}
	b.notes = notes
	return nil
}

// Cancel transitions to cancelled. Cancelling an already-terminal booking is
// rejected, not silently accepted.
func (b *Booking) Cancel() error {
	if b.status.IsTerminal() {
		return ErrTerminalStatus
	}
	b.status = StatusCancelled
	return nil
}

// Complete transitions to completed. Driven by the caller, typically once
// the slot's end time has passed.
func (b *Booking) Complete() error {
	if b.status.IsTerminal() {
		return ErrTerminalStatus
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) FloorPlanID() uuid.UUID           { return b.floorPlanID }
func (b *Booking) PlanVersion() int                 { return b.planVersion }
func (b *Booking) ResourceType() floorplan.CellType { return b.resourceType }
func (b *Booking) ResourceLabel() string            { return b.resourceLabel }
func (b *Booking) Row() int                         { return b.row }
func (b *Booking) Col() int                         { return b.col }
func (b *Booking) UserID() uuid.UUID                { return b.userID }
func (b *Booking) Slot() TimeSlot                   { return b.slot }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) PartySize() *int                  { return b.partySize }
func (b *Booking) Notes() *string                   { return b.notes }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
