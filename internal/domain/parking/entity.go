package parking

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySlotLabel       = errors.New("slot label is required")
	ErrMissingUser          = errors.New("employee allocation requires a user id")
	ErrVisitorNameRequired  = errors.New("visitor name is required (minimum 2 characters)")
	ErrInvalidVisitorPhone  = errors.New("invalid visitor phone number format")
	ErrEntryAlreadyRecorded = errors.New("entry already recorded")
	ErrExitAlreadyRecorded  = errors.New("exit already recorded")
	ErrNoEntryRecorded      = errors.New("no entry recorded")
	ErrExitBeforeEntry      = errors.New("exit time precedes entry time")
	ErrAllocationInactive   = errors.New("allocation is no longer active")
)

var visitorPhonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,15}$`)

// VisitorInfo identifies a visitor occupant. Mutually exclusive with an
// employee user id on an allocation.
type VisitorInfo struct {
	Name    string
	Phone   *string
	Company *string
}

func (v VisitorInfo) validate() error {
	if len(strings.TrimSpace(v.Name)) < 2 {
		return ErrVisitorNameRequired
	}
	if v.Phone != nil && !visitorPhonePattern.MatchString(*v.Phone) {
		return ErrInvalidVisitorPhone
	}
	return nil
}

// Allocation is an occupancy record for one parking slot: occupied from
// entry until released at exit, not booked by time window. At most one
// active allocation exists per slot, and one per employee system-wide.
type Allocation struct {
	id            uuid.UUID
	floorPlanID   uuid.UUID
	slotLabel     string
	row           int
	col           int
	parkingType   ParkingType
	userID        *uuid.UUID
	visitor       *VisitorInfo
	vehicleNumber *string
	notes         *string
	entryTime     *time.Time
	exitTime      *time.Time
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewEmployeeAllocation reserves a slot for an employee. Entry is recorded
// separately: employees may reserve ahead of arriving.
func NewEmployeeAllocation(floorPlanID uuid.UUID, slotLabel string, row, col int, userID uuid.UUID, vehicleNumber, notes *string) (*Allocation, error) {
	if slotLabel == "" {
		return nil, ErrEmptySlotLabel
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	uid := userID
	return &Allocation{
		id:            uuid.New(),
		floorPlanID:   floorPlanID,
		slotLabel:     slotLabel,
		row:           row,
		col:           col,
		parkingType:   TypeEmployee,
		userID:        &uid,
		vehicleNumber: vehicleNumber,
		notes:         notes,
		isActive:      true,
	}, nil
}

// NewVisitorAllocation logs a visitor into a slot. Visitors are on site the
// moment a manager logs them, so entry is stamped immediately.
func NewVisitorAllocation(floorPlanID uuid.UUID, slotLabel string, row, col int, visitor VisitorInfo, vehicleNumber, notes *string, now time.Time) (*Allocation, error) {
	if slotLabel == "" {
		return nil, ErrEmptySlotLabel
	}
	if err := visitor.validate(); err != nil {
		return nil, err
	}
	visitor.Name = strings.TrimSpace(visitor.Name)
	entry := now
	return &Allocation{
		id:            uuid.New(),
		floorPlanID:   floorPlanID,
		slotLabel:     slotLabel,
		row:           row,
		col:           col,
		parkingType:   TypeVisitor,
		visitor:       &visitor,
		vehicleNumber: vehicleNumber,
		notes:         notes,
		entryTime:     &entry,
		isActive:      true,
	}, nil
}

func ReconstructAllocation(
	id, floorPlanID uuid.UUID,
	slotLabel string,
	row, col int,
	parkingType ParkingType,
	userID *uuid.UUID,
	visitor *VisitorInfo,
	vehicleNumber, notes *string,
	entryTime, exitTime *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Allocation {
	return &Allocation{
		id:            id,
		floorPlanID:   floorPlanID,
		slotLabel:     slotLabel,
		row:           row,
		col:           col,
		parkingType:   parkingType,
		userID:        userID,
		visitor:       visitor,
		vehicleNumber: vehicleNumber,
		notes:         notes,
		entryTime:     entryTime,
		exitTime:      exitTime,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// RecordEntry stamps the occupant's arrival. Double entries are rejected.
func (a *Allocation) RecordEntry(now time.Time) error {
	if !a.isActive {
		return ErrAllocationInactive
	}
	if a.entryTime != nil {
		return ErrEntryAlreadyRecorded
	}
	entry := now
	a.entryTime = &entry
	return nil
}

// RecordExit stamps the departure, deactivates the allocation and returns
// the immutable history record with the computed duration.
func (a *Allocation) RecordExit(now time.Time) (*History, error) {
	if !a.isActive {
		return nil, ErrAllocationInactive
	}
	if a.entryTime == nil {
		return nil, ErrNoEntryRecorded
	}
	if a.exitTime != nil {
		return nil, ErrExitAlreadyRecorded
	}
	if now.Before(*a.entryTime) {
		return nil, ErrExitBeforeEntry
	}

	exit := now
	a.exitTime = &exit
	a.isActive = false

	return &History{
		ID:              uuid.New(),
		AllocationID:    a.id,
		FloorPlanID:     a.floorPlanID,
		SlotLabel:       a.slotLabel,
		ParkingType:     a.parkingType,
		UserID:          a.userID,
		Visitor:         a.visitor,
		VehicleNumber:   a.vehicleNumber,
		EntryTime:       *a.entryTime,
		ExitTime:        exit,
		DurationMinutes: int(exit.Sub(*a.entryTime) / time.Minute),
	}, nil
}

// IsOccupying reports whether the allocation currently holds its slot.
func (a *Allocation) IsOccupying() bool {
	return a.isActive && a.exitTime == nil
}

func (a *Allocation) ID() uuid.UUID            { return a.id }
func (a *Allocation) FloorPlanID() uuid.UUID   { return a.floorPlanID }
func (a *Allocation) SlotLabel() string        { return a.slotLabel }
func (a *Allocation) Row() int                 { return a.row }
func (a *Allocation) Col() int                 { return a.col }
func (a *Allocation) ParkingType() ParkingType { return a.parkingType }
func (a *Allocation) UserID() *uuid.UUID       { return a.userID }
func (a *Allocation) Visitor() *VisitorInfo    { return a.visitor }
func (a *Allocation) VehicleNumber() *string   { return a.vehicleNumber }
func (a *Allocation) Notes() *string           { return a.notes }
func (a *Allocation) EntryTime() *time.Time    { return a.entryTime }
func (a *Allocation) ExitTime() *time.Time     { return a.exitTime }
func (a *Allocation) IsActive() bool           { return a.isActive }
func (a *Allocation) CreatedAt() time.Time     { return a.createdAt }
func (a *Allocation) UpdatedAt() time.Time     { return a.updatedAt }

// History is the immutable record written when an allocation is released.
// Duration is stored as whole minutes, floored.
type History struct {
	ID              uuid.UUID
	AllocationID    uuid.UUID
	FloorPlanID     uuid.UUID
	SlotLabel       string
	ParkingType     ParkingType
	UserID          *uuid.UUID
	Visitor         *VisitorInfo
	VehicleNumber   *string
	EntryTime       time.Time
	ExitTime        time.Time
	DurationMinutes int
}
