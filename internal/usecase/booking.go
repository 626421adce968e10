package usecase

import (
	"context"
	"errors"
	"time"

	"officegrid/internal/domain/booking"
	"officegrid/internal/domain/floorplan"
	"officegrid/internal/domain/user"
	reqdto "officegrid/internal/handler/dto/request"
	"officegrid/internal/infra"
	"officegrid/internal/infra/db"
	"officegrid/internal/pkg/errs"
	"officegrid/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingConflict   = errors.New("time slot conflict")
	ErrCellOutOfBounds   = errors.New("cell coordinates out of bounds")
	ErrCellNotBookable   = errors.New("cell is not a bookable resource")
	ErrCellInactive      = errors.New("cell is inactive")
	ErrLabelMismatch     = errors.New("resource label does not match cell")
	ErrPartySizeTooLarge = errors.New("party size exceeds table capacity")
	ErrBookingTerminal   = errors.New("booking is in a terminal state")
	ErrNotBookingOwner   = errors.New("booking belongs to another user")
)

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	HasOverlap(ctx context.Context, dbtx db.DBTX, floorPlanID uuid.UUID, resourceLabel string, slot booking.TimeSlot, excludeID *uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	ListForResourceDate(ctx context.Context, floorPlanID uuid.UUID, resourceLabel string, date time.Time) ([]*booking.Booking, error)
	BookedLabels(ctx context.Context, floorPlanID uuid.UUID, slot booking.TimeSlot) (map[string]struct{}, error)
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, actor user.Actor, req reqdto.CreateBookingRequest) (*booking.Booking, error)
	UpdateBooking(ctx context.Context, actor user.Actor, id uuid.UUID, req reqdto.UpdateBookingRequest) (*booking.Booking, error)
	CancelBooking(ctx context.Context, actor user.Actor, id uuid.UUID) (*booking.Booking, error)
	CompleteBooking(ctx context.Context, actor user.Actor, id uuid.UUID) (*booking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	ListResourceBookings(ctx context.Context, floorPlanID uuid.UUID, resourceLabel string, date time.Time) ([]*booking.Booking, error)
	CheckOverlap(ctx context.Context, floorPlanID uuid.UUID, resourceLabel string, start, end time.Time) (bool, error)
	AvailableResources(ctx context.Context, floorPlanID uuid.UUID, cellType floorplan.CellType, start, end time.Time) ([]floorplan.CellRef, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	planRepo    FloorPlanRepository
	db          *pgxpool.Pool
}

func NewBookingUseCase(bookingRepo BookingRepository, planRepo FloorPlanRepository, db *pgxpool.Pool) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		planRepo:    planRepo,
		db:          db,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	actor user.Actor,
	req reqdto.CreateBookingRequest,
) (*booking.Booking, error) {
	plan, version, err := u.activePlanWithGrid(ctx, req.FloorPlanID)
	if err != nil {
		return nil, err
	}

	cell, err := u.validateBookableCell(plan, version.Grid(), req.Row, req.Col, req.ResourceLabel)
	if err != nil {
		return nil, err
	}
	if cell.CellType == floorplan.CellTypeCafeteriaTable && req.PartySize != nil &&
		cell.Capacity != nil && *req.PartySize > *cell.Capacity {
		return nil, ErrPartySizeTooLarge
	}

	slot, err := booking.NewTimeSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	entity, err := booking.NewBooking(
		plan.ID(), version.Number(), cell.CellType, req.ResourceLabel,
		req.Row, req.Col, actor.ID, slot, req.PartySize, req.GetNotes(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	// Pre-check inside the transaction catches most conflicts early; the
	// exclusion constraint arbitrates writers that race past it.
	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (uuid.UUID, error) {
		overlaps, txErr := u.bookingRepo.HasOverlap(ctx, tx, plan.ID(), req.ResourceLabel, slot, nil)
		if txErr != nil {
			return uuid.Nil, txErr
		}
		if overlaps {
			return uuid.Nil, ErrBookingConflict
		}
		return u.bookingRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		if errors.Is(err, ErrBookingConflict) || infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *bookingUseCaseImpl) UpdateBooking(
	ctx context.Context,
	actor user.Actor,
	id uuid.UUID,
	req reqdto.UpdateBookingRequest,
) (*booking.Booking, error) {
	entity, err := u.findOwnedBooking(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.StartTime != nil || req.EndTime != nil {
		start := entity.Slot().Start()
		end := entity.Slot().End()
		if req.StartTime != nil {
			start = *req.StartTime
		}
		if req.EndTime != nil {
			end = *req.EndTime
		}

		slot, slotErr := booking.NewTimeSlot(start, end)
		if slotErr != nil {
			return nil, errs.Mark(slotErr, ErrDomainValidationFailed)
		}
		if rescheduleErr := entity.Reschedule(slot); rescheduleErr != nil {
			return nil, ErrBookingTerminal
		}
	}
	if req.Notes != nil {
		if notesErr := entity.UpdateNotes(req.GetNotes()); notesErr != nil {
			return nil, ErrBookingTerminal
		}
	}

	excludeID := entity.ID()
	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		overlaps, txErr := u.bookingRepo.HasOverlap(ctx, tx, entity.FloorPlanID(), entity.ResourceLabel(), entity.Slot(), &excludeID)
		if txErr != nil {
			return struct{}{}, txErr
		}
		if overlaps {
			return struct{}{}, ErrBookingConflict
		}
		return struct{}{}, u.bookingRepo.Update(ctx, tx, entity)
	})
	if err != nil {
		if errors.Is(err, ErrBookingConflict) || infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, actor user.Actor, id uuid.UUID) (*booking.Booking, error) {
	return u.transition(ctx, actor, id, (*booking.Booking).Cancel)
}

func (u *bookingUseCaseImpl) CompleteBooking(ctx context.Context, actor user.Actor, id uuid.UUID) (*booking.Booking, error) {
	return u.transition(ctx, actor, id, (*booking.Booking).Complete)
}

func (u *bookingUseCaseImpl) transition(
	ctx context.Context,
	actor user.Actor,
	id uuid.UUID,
	apply func(*booking.Booking) error,
) (*booking.Booking, error) {
	entity, err := u.findOwnedBooking(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := apply(entity); err != nil {
		return nil, ErrBookingTerminal
	}

	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, u.bookingRepo.Update(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	entity, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return entity, nil
}

func (u *bookingUseCaseImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	bookings, err := u.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return bookings, nil
}

func (u *bookingUseCaseImpl) ListResourceBookings(ctx context.Context, floorPlanID uuid.UUID, resourceLabel string, date time.Time) ([]*booking.Booking, error) {
	bookings, err := u.bookingRepo.ListForResourceDate(ctx, floorPlanID, resourceLabel, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list resource bookings")
	}
	return bookings, nil
}

func (u *bookingUseCaseImpl) CheckOverlap(ctx context.Context, floorPlanID uuid.UUID, resourceLabel string, start, end time.Time) (bool, error) {
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return false, errs.Mark(err, ErrDomainValidationFailed)
	}
	overlaps, err := u.bookingRepo.HasOverlap(ctx, u.db, floorPlanID, resourceLabel, slot, nil)
	if err != nil {
		return false, errs.Wrap(err, "failed to check overlap")
	}
	return overlaps, nil
}

// AvailableResources lists cells of the requested type whose label has no
// blocking booking overlapping the window. Unlabeled and inactive cells are
// never offered.
func (u *bookingUseCaseImpl) AvailableResources(
	ctx context.Context,
	floorPlanID uuid.UUID,
	cellType floorplan.CellType,
	start, end time.Time,
) ([]floorplan.CellRef, error) {
	plan, version, err := u.activePlanWithGrid(ctx, floorPlanID)
	if err != nil {
		return nil, err
	}
	if plan.PlanType() == floorplan.PlanTypeParking ||
		!floorplan.IsResourceCellType(plan.PlanType(), cellType) {
		return nil, ErrCellNotBookable
	}

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	booked, err := u.bookingRepo.BookedLabels(ctx, floorPlanID, slot)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booked labels")
	}

	var available []floorplan.CellRef
	for _, ref := range version.Grid().CellsByTypeExcluding(cellType, booked) {
		if ref.Cell.Label == "" || !ref.Cell.IsActive {
			continue
		}
		available = append(available, ref)
	}
	return available, nil
}

func (u *bookingUseCaseImpl) activePlanWithGrid(ctx context.Context, floorPlanID uuid.UUID) (*floorplan.FloorPlan, *floorplan.Version, error) {
	plan, err := u.planRepo.FindPlanByID(ctx, floorPlanID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrFloorPlanNotFound
		}
		return nil, nil, errs.Wrap(err, "failed to find floor plan")
	}
	if !plan.IsActive() {
		return nil, nil, ErrFloorPlanInactive
	}

	version, err := u.planRepo.GetVersion(ctx, floorPlanID, plan.CurrentVersion())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrVersionNotFound
		}
		return nil, nil, errs.Wrap(err, "failed to load current version")
	}
	return plan, version, nil
}

func (u *bookingUseCaseImpl) validateBookableCell(
	plan *floorplan.FloorPlan,
	grid floorplan.Grid,
	row, col int,
	resourceLabel string,
) (floorplan.Cell, error) {
	cell, err := grid.CellAt(row, col)
	if err != nil {
		return floorplan.Cell{}, ErrCellOutOfBounds
	}
	// Parking goes through allocations, not time-slot bookings.
	if plan.PlanType() == floorplan.PlanTypeParking ||
		!floorplan.IsResourceCellType(plan.PlanType(), cell.CellType) {
		return floorplan.Cell{}, ErrCellNotBookable
	}
	if cell.Label != resourceLabel {
		return floorplan.Cell{}, ErrLabelMismatch
	}
	if !cell.IsActive {
		return floorplan.Cell{}, ErrCellInactive
	}
	return cell, nil
}

func (u *bookingUseCaseImpl) findOwnedBooking(ctx context.Context, actor user.Actor, id uuid.UUID) (*booking.Booking, error) {
	entity, err := u.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.IsOwnedBy(actor.ID) && !actor.IsAdmin() {
		return nil, ErrNotBookingOwner
	}
	return entity, nil
}
