package usecase

import (
	"context"
	"errors"

	"officegrid/internal/domain/floorplan"
	"officegrid/internal/domain/parking"
	"officegrid/internal/domain/user"
	reqdto "officegrid/internal/handler/dto/request"
	"officegrid/internal/infra"
	"officegrid/internal/infra/db"
	"officegrid/internal/pkg/clock"
	"officegrid/internal/pkg/errs"
	"officegrid/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAllocationNotFound = errors.New("parking allocation not found")
	ErrNoFreeSlot         = errors.New("no free parking slot")
	ErrSlotNotFound       = errors.New("slot label not found on plan")
	ErrSlotOccupied       = errors.New("parking slot already occupied")
	ErrAlreadyParked      = errors.New("employee already has an active allocation")
	ErrAllocationState    = errors.New("invalid allocation state")
)

type ParkingRepository interface {
	CreateAllocation(ctx context.Context, tx db.DBTX, a *parking.Allocation) (uuid.UUID, error)
	FindAllocationByID(ctx context.Context, id uuid.UUID) (*parking.Allocation, error)
	ActiveAllocationForUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (*parking.Allocation, error)
	IsSlotOccupied(ctx context.Context, dbtx db.DBTX, floorPlanID uuid.UUID, slotLabel string) (bool, error)
	OccupiedLabels(ctx context.Context, dbtx db.DBTX, floorPlanID uuid.UUID) (map[string]struct{}, error)
	UpdateAllocation(ctx context.Context, tx db.DBTX, a *parking.Allocation) error
	CreateHistory(ctx context.Context, tx db.DBTX, h *parking.History) error
	ListActiveAllocations(ctx context.Context, floorPlanID uuid.UUID) ([]*parking.Allocation, error)
	ListHistory(ctx context.Context, floorPlanID uuid.UUID) ([]*parking.History, error)
}

type ParkingUseCase interface {
	AssignEmployee(ctx context.Context, actor user.Actor, req reqdto.AssignEmployeeRequest) (*parking.Allocation, error)
	AssignVisitor(ctx context.Context, actor user.Actor, req reqdto.AssignVisitorRequest) (*parking.Allocation, error)
	RecordEntry(ctx context.Context, actor user.Actor, allocationID uuid.UUID) (*parking.Allocation, error)
	RecordExit(ctx context.Context, actor user.Actor, allocationID uuid.UUID) (*parking.History, error)
	GetAllocation(ctx context.Context, id uuid.UUID) (*parking.Allocation, error)
	AvailableSlots(ctx context.Context, floorPlanID uuid.UUID) ([]floorplan.CellRef, error)
	ListActiveAllocations(ctx context.Context, floorPlanID uuid.UUID) ([]*parking.Allocation, error)
	ListHistory(ctx context.Context, floorPlanID uuid.UUID) ([]*parking.History, error)
}

type parkingUseCaseImpl struct {
	parkingRepo ParkingRepository
	planRepo    FloorPlanRepository
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewParkingUseCase(parkingRepo ParkingRepository, planRepo FloorPlanRepository, db *pgxpool.Pool, clock clock.Clock) ParkingUseCase {
	return &parkingUseCaseImpl{
		parkingRepo: parkingRepo,
		planRepo:    planRepo,
		db:          db,
		clock:       clock,
	}
}

func (u *parkingUseCaseImpl) AssignEmployee(
	ctx context.Context,
	actor user.Actor,
	req reqdto.AssignEmployeeRequest,
) (*parking.Allocation, error) {
	grid, err := u.parkingGrid(ctx, req.FloorPlanID)
	if err != nil {
		return nil, err
	}

	allocation, err := shared.RunInTx(ctx, u.db, func(tx db.DBTX) (*parking.Allocation, error) {
		existing, txErr := u.parkingRepo.ActiveAllocationForUser(ctx, tx, actor.ID)
		if txErr != nil {
			return nil, txErr
		}
		if existing != nil {
			return nil, ErrAlreadyParked
		}

		slot, txErr := u.resolveSlot(ctx, tx, req.FloorPlanID, grid, req.SlotLabel)
		if txErr != nil {
			return nil, txErr
		}

		entity, txErr := parking.NewEmployeeAllocation(
			req.FloorPlanID, slot.Cell.Label, slot.Row, slot.Col, actor.ID, req.VehicleNumber, req.Notes,
		)
		if txErr != nil {
			return nil, errs.Mark(txErr, ErrDomainValidationFailed)
		}
		if _, txErr = u.parkingRepo.CreateAllocation(ctx, tx, entity); txErr != nil {
			return nil, txErr
		}
		return entity, nil
	})
	return u.mapAssignErr(allocation, err)
}

// AssignVisitor is a parking-manager operation: visitors are walked in at
// the gate, so entry is stamped immediately.
func (u *parkingUseCaseImpl) AssignVisitor(
	ctx context.Context,
	actor user.Actor,
	req reqdto.AssignVisitorRequest,
) (*parking.Allocation, error) {
	if !user.CanManageParking(actor) {
		return nil, ErrForbidden
	}

	grid, err := u.parkingGrid(ctx, req.FloorPlanID)
	if err != nil {
		return nil, err
	}

	allocation, err := shared.RunInTx(ctx, u.db, func(tx db.DBTX) (*parking.Allocation, error) {
		slot, txErr := u.resolveSlot(ctx, tx, req.FloorPlanID, grid, req.SlotLabel)
		if txErr != nil {
			return nil, txErr
		}

		entity, txErr := parking.NewVisitorAllocation(
			req.FloorPlanID, slot.Cell.Label, slot.Row, slot.Col,
			req.VisitorToDomain(), req.VehicleNumber, req.Notes, u.clock.Now(),
		)
		if txErr != nil {
			return nil, errs.Mark(txErr, ErrDomainValidationFailed)
		}
		if _, txErr = u.parkingRepo.CreateAllocation(ctx, tx, entity); txErr != nil {
			return nil, txErr
		}
		return entity, nil
	})
	return u.mapAssignErr(allocation, err)
}

func (u *parkingUseCaseImpl) RecordEntry(ctx context.Context, actor user.Actor, allocationID uuid.UUID) (*parking.Allocation, error) {
	entity, err := u.findActorAllocation(ctx, actor, allocationID)
	if err != nil {
		return nil, err
	}

	if err := entity.RecordEntry(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrAllocationState)
	}

	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, u.parkingRepo.UpdateAllocation(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *parkingUseCaseImpl) RecordExit(ctx context.Context, actor user.Actor, allocationID uuid.UUID) (*parking.History, error) {
	entity, err := u.findActorAllocation(ctx, actor, allocationID)
	if err != nil {
		return nil, err
	}

	history, err := entity.RecordExit(u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrAllocationState)
	}

	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		if txErr := u.parkingRepo.UpdateAllocation(ctx, tx, entity); txErr != nil {
			return struct{}{}, txErr
		}
		return struct{}{}, u.parkingRepo.CreateHistory(ctx, tx, history)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return history, nil
}

func (u *parkingUseCaseImpl) GetAllocation(ctx context.Context, id uuid.UUID) (*parking.Allocation, error) {
	entity, err := u.parkingRepo.FindAllocationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAllocationNotFound
		}
		return nil, errs.Wrap(err, "failed to find allocation")
	}
	return entity, nil
}

func (u *parkingUseCaseImpl) AvailableSlots(ctx context.Context, floorPlanID uuid.UUID) ([]floorplan.CellRef, error) {
	grid, err := u.parkingGrid(ctx, floorPlanID)
	if err != nil {
		return nil, err
	}

	occupied, err := u.parkingRepo.OccupiedLabels(ctx, u.db, floorPlanID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load occupied slots")
	}
	return availableSlotRefs(grid, occupied), nil
}

func (u *parkingUseCaseImpl) ListActiveAllocations(ctx context.Context, floorPlanID uuid.UUID) ([]*parking.Allocation, error) {
	allocations, err := u.parkingRepo.ListActiveAllocations(ctx, floorPlanID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active allocations")
	}
	return allocations, nil
}

func (u *parkingUseCaseImpl) ListHistory(ctx context.Context, floorPlanID uuid.UUID) ([]*parking.History, error) {
	records, err := u.parkingRepo.ListHistory(ctx, floorPlanID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list parking history")
	}
	return records, nil
}

// resolveSlot picks the slot to allocate: the requested label when given,
// otherwise the first free slot in row-major grid order.
func (u *parkingUseCaseImpl) resolveSlot(
	ctx context.Context,
	tx db.DBTX,
	floorPlanID uuid.UUID,
	grid floorplan.Grid,
	requested *string,
) (floorplan.CellRef, error) {
	if requested != nil {
		for _, ref := range grid.CellsByType(floorplan.CellTypeParkingSlot) {
			if ref.Cell.Label != *requested {
				continue
			}
			if !ref.Cell.IsActive {
				return floorplan.CellRef{}, ErrSlotNotFound
			}
			occupied, err := u.parkingRepo.IsSlotOccupied(ctx, tx, floorPlanID, *requested)
			if err != nil {
				return floorplan.CellRef{}, err
			}
			if occupied {
				return floorplan.CellRef{}, ErrSlotOccupied
			}
			return ref, nil
		}
		return floorplan.CellRef{}, ErrSlotNotFound
	}

	occupied, err := u.parkingRepo.OccupiedLabels(ctx, tx, floorPlanID)
	if err != nil {
		return floorplan.CellRef{}, err
	}
	free := availableSlotRefs(grid, occupied)
	if len(free) == 0 {
		return floorplan.CellRef{}, ErrNoFreeSlot
	}
	return free[0], nil
}

func (u *parkingUseCaseImpl) parkingGrid(ctx context.Context, floorPlanID uuid.UUID) (floorplan.Grid, error) {
	plan, err := u.planRepo.FindPlanByID(ctx, floorPlanID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFloorPlanNotFound
		}
		return nil, errs.Wrap(err, "failed to find floor plan")
	}
	if plan.PlanType() != floorplan.PlanTypeParking {
		return nil, ErrFloorPlanNotFound
	}
	if !plan.IsActive() {
		return nil, ErrFloorPlanInactive
	}

	version, err := u.planRepo.GetVersion(ctx, floorPlanID, plan.CurrentVersion())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVersionNotFound
		}
		return nil, errs.Wrap(err, "failed to load current version")
	}
	return version.Grid(), nil
}

func (u *parkingUseCaseImpl) findActorAllocation(ctx context.Context, actor user.Actor, id uuid.UUID) (*parking.Allocation, error) {
	entity, err := u.GetAllocation(ctx, id)
	if err != nil {
		return nil, err
	}
	// Visitor allocations are handled at the gate by parking staff.
	if entity.UserID() == nil {
		if !user.CanManageParking(actor) {
			return nil, ErrForbidden
		}
		return entity, nil
	}
	if *entity.UserID() != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return entity, nil
}

func (u *parkingUseCaseImpl) mapAssignErr(allocation *parking.Allocation, err error) (*parking.Allocation, error) {
	if err == nil {
		return allocation, nil
	}
	switch {
	case errors.Is(err, ErrAlreadyParked),
		errors.Is(err, ErrSlotOccupied),
		errors.Is(err, ErrSlotNotFound),
		errors.Is(err, ErrNoFreeSlot),
		errors.Is(err, ErrDomainValidationFailed):
		return nil, err
	case infra.IsKind(err, infra.KindDuplicateKey):
		// Partial unique indexes arbitrate racing writers.
		return nil, ErrSlotOccupied
	default:
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func availableSlotRefs(grid floorplan.Grid, occupied map[string]struct{}) []floorplan.CellRef {
	var free []floorplan.CellRef
	for _, ref := range grid.CellsByTypeExcluding(floorplan.CellTypeParkingSlot, occupied) {
		if ref.Cell.Label == "" || !ref.Cell.IsActive {
			continue
		}
		free = append(free, ref)
	}
	return free
}
