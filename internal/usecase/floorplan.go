package usecase

import (
	"context"
	"errors"

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
	ErrFloorPlanNotFound = errors.New("floor plan not found")
	ErrVersionNotFound   = errors.New("floor plan version not found")
	ErrInvalidGrid       = errors.New("invalid grid layout")
	ErrDuplicatePlanName = errors.New("floor plan name already in use for this type")
	ErrFloorPlanInactive = errors.New("floor plan is inactive")
	ErrVersionRace       = errors.New("concurrent version update")
	ErrForbidden         = errors.New("insufficient permissions")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// floorCodeAttempts bounds retries when a freshly generated floor code
// collides with an existing one.
const floorCodeAttempts = 3

type FloorPlanRepository interface {
	CreatePlan(ctx context.Context, tx db.DBTX, plan *floorplan.FloorPlan) (uuid.UUID, error)
	FindPlanByID(ctx context.Context, id uuid.UUID) (*floorplan.FloorPlan, error)
	ExistsPlanNameForType(ctx context.Context, name string, planType floorplan.PlanType) (bool, error)
	ListPlans(ctx context.Context, planType *floorplan.PlanType, isActive *bool) ([]*floorplan.FloorPlan, error)
	UpdatePlanMetadata(ctx context.Context, tx db.DBTX, plan *floorplan.FloorPlan) error
	DeactivatePlan(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	CreateVersion(ctx context.Context, tx db.DBTX, v *floorplan.Version) (uuid.UUID, error)
	BumpCurrentVersion(ctx context.Context, tx db.DBTX, floorPlanID uuid.UUID, fromVersion int) error
	LatestVersion(ctx context.Context, floorPlanID uuid.UUID) (*floorplan.Version, error)
	GetVersion(ctx context.Context, floorPlanID uuid.UUID, number int) (*floorplan.Version, error)
	ListVersions(ctx context.Context, floorPlanID uuid.UUID) ([]*floorplan.Version, error)
}

type FloorPlanUseCase interface {
	CreateFloorPlan(ctx context.Context, actor user.Actor, req reqdto.CreateFloorPlanRequest) (*floorplan.FloorPlan, error)
	GetFloorPlan(ctx context.Context, id uuid.UUID) (*floorplan.FloorPlan, *floorplan.Version, error)
	ListFloorPlans(ctx context.Context, planType *floorplan.PlanType, isActive *bool) ([]*floorplan.FloorPlan, error)
	UpdateFloorPlan(ctx context.Context, actor user.Actor, id uuid.UUID, req reqdto.UpdateFloorPlanRequest) (*floorplan.FloorPlan, error)
	DeactivateFloorPlan(ctx context.Context, actor user.Actor, id uuid.UUID) error
	CreateVersion(ctx context.Context, actor user.Actor, planID uuid.UUID, req reqdto.CreateVersionRequest) (*floorplan.Version, error)
	GetVersion(ctx context.Context, planID uuid.UUID, number int) (*floorplan.Version, error)
	ListVersions(ctx context.Context, planID uuid.UUID) ([]*floorplan.Version, error)
}

type floorPlanUseCaseImpl struct {
	repo FloorPlanRepository
	db   *pgxpool.Pool
}

func NewFloorPlanUseCase(repo FloorPlanRepository, db *pgxpool.Pool) FloorPlanUseCase {
	return &floorPlanUseCaseImpl{repo: repo, db: db}
}

func (u *floorPlanUseCaseImpl) CreateFloorPlan(
	ctx context.Context,
	actor user.Actor,
	req reqdto.CreateFloorPlanRequest,
) (*floorplan.FloorPlan, error) {
	planType, err := floorplan.NewPlanType(req.PlanType)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	if !user.CanManagePlanType(actor, planType) {
		return nil, ErrForbidden
	}

	exists, err := u.repo.ExistsPlanNameForType(ctx, req.GetName(), planType)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, ErrDuplicatePlanName
	}

	grid := req.GridToDomain()

	// Floor codes are random; regenerate the aggregate on a rare collision.
	var lastErr error
	for attempt := 0; attempt < floorCodeAttempts; attempt++ {
		plan, err := floorplan.NewFloorPlan(req.GetName(), planType, req.Rows, req.Cols, req.Description, actor.ID)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidationFailed)
		}

		version, err := floorplan.NewVersion(plan, 1, grid, nil, actor.ID)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidGrid)
		}

		_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (uuid.UUID, error) {
			if _, txErr := u.repo.CreatePlan(ctx, tx, plan); txErr != nil {
				return uuid.Nil, txErr
			}
			return u.repo.CreateVersion(ctx, tx, version)
		})
		if err == nil {
			return plan, nil
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			lastErr = err
			continue
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil, errs.Mark(lastErr, ErrDuplicatePlanName)
}

func (u *floorPlanUseCaseImpl) GetFloorPlan(ctx context.Context, id uuid.UUID) (*floorplan.FloorPlan, *floorplan.Version, error) {
	plan, err := u.findPlan(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	// Versions are append-only, so the newest row is the current grid even
	// if the plan's counter ever drifted.
	version, err := u.repo.LatestVersion(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrVersionNotFound
		}
		return nil, nil, errs.Wrap(err, "failed to load current version")
	}
	return plan, version, nil
}

func (u *floorPlanUseCaseImpl) ListFloorPlans(ctx context.Context, planType *floorplan.PlanType, isActive *bool) ([]*floorplan.FloorPlan, error) {
	plans, err := u.repo.ListPlans(ctx, planType, isActive)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list floor plans")
	}
	return plans, nil
}

func (u *floorPlanUseCaseImpl) UpdateFloorPlan(
	ctx context.Context,
	actor user.Actor,
	id uuid.UUID,
	req reqdto.UpdateFloorPlanRequest,
) (*floorplan.FloorPlan, error) {
	plan, err := u.findManagedPlan(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	name := plan.Name()
	if n := req.GetName(); n != nil {
		name = *n
	}
	description := plan.Description()
	if req.Description != nil {
		description = req.Description
	}

	if name != plan.Name() {
		exists, err := u.repo.ExistsPlanNameForType(ctx, name, plan.PlanType())
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return nil, ErrDuplicatePlanName
		}
	}

	if err := plan.UpdateMetadata(name, description); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, u.repo.UpdatePlanMetadata(ctx, tx, plan)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicatePlanName
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return plan, nil
}

func (u *floorPlanUseCaseImpl) DeactivateFloorPlan(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	plan, err := u.findManagedPlan(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := plan.Deactivate(); err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}

	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, u.repo.DeactivatePlan(ctx, tx, id)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// CreateVersion appends a new grid revision. The current-version bump is
// optimistic: two concurrent editors race on the counter and the loser gets
// ErrVersionRace back instead of silently overwriting.
func (u *floorPlanUseCaseImpl) CreateVersion(
	ctx context.Context,
	actor user.Actor,
	planID uuid.UUID,
	req reqdto.CreateVersionRequest,
) (*floorplan.Version, error) {
	plan, err := u.findManagedPlan(ctx, actor, planID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive() {
		return nil, ErrFloorPlanInactive
	}

	version, err := floorplan.NewVersion(plan, plan.NextVersion(), req.GridToDomain(), req.ChangeNotes, actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidGrid)
	}

	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (uuid.UUID, error) {
		id, txErr := u.repo.CreateVersion(ctx, tx, version)
		if txErr != nil {
			return uuid.Nil, txErr
		}
		return id, u.repo.BumpCurrentVersion(ctx, tx, planID, plan.CurrentVersion())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrVersionRace
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return version, nil
}

func (u *floorPlanUseCaseImpl) GetVersion(ctx context.Context, planID uuid.UUID, number int) (*floorplan.Version, error) {
	version, err := u.repo.GetVersion(ctx, planID, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVersionNotFound
		}
		return nil, errs.Wrap(err, "failed to find version")
	}
	return version, nil
}

func (u *floorPlanUseCaseImpl) ListVersions(ctx context.Context, planID uuid.UUID) ([]*floorplan.Version, error) {
	if _, err := u.findPlan(ctx, planID); err != nil {
		return nil, err
	}

	versions, err := u.repo.ListVersions(ctx, planID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list versions")
	}
	return versions, nil
}

func (u *floorPlanUseCaseImpl) findPlan(ctx context.Context, id uuid.UUID) (*floorplan.FloorPlan, error) {
	plan, err := u.repo.FindPlanByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFloorPlanNotFound
		}
		return nil, errs.Wrap(err, "failed to find floor plan")
	}
	return plan, nil
}

func (u *floorPlanUseCaseImpl) findManagedPlan(ctx context.Context, actor user.Actor, id uuid.UUID) (*floorplan.FloorPlan, error) {
	plan, err := u.findPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanManagePlanType(actor, plan.PlanType()) {
		return nil, ErrForbidden
	}
	return plan, nil
}
