package repository

import (
	"context"
	"encoding/json"

	"officegrid/internal/domain/floorplan"
	"officegrid/internal/infra"
	"officegrid/internal/infra/db"
	"officegrid/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type FloorPlanRepository struct {
	db db.DBTX
}

func NewFloorPlanRepository(pool db.DBTX) *FloorPlanRepository {
	return &FloorPlanRepository{db: pool}
}

const floorPlanColumns = `id, floor_code, name, plan_type, rows, columns, current_version, is_active, description, created_by, created_at, updated_at`

func (r *FloorPlanRepository) CreatePlan(ctx context.Context, tx db.DBTX, plan *floorplan.FloorPlan) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO floor_plans (id, floor_code, name, plan_type, rows, columns, current_version, is_active, description, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		plan.ID(), plan.FloorCode(), plan.Name(), plan.PlanType().String(),
		plan.Rows(), plan.Columns(), plan.CurrentVersion(), plan.IsActive(),
		pgconv.StringPtrToPgtype(plan.Description()), plan.CreatedBy(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create floor plan", err)
	}
	return id, nil
}

func (r *FloorPlanRepository) FindPlanByID(ctx context.Context, id uuid.UUID) (*floorplan.FloorPlan, error) {
	row := r.db.QueryRow(ctx, `SELECT `+floorPlanColumns+` FROM floor_plans WHERE id = $1`, id)
	plan, err := scanFloorPlan(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("floor plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find floor plan", err)
	}
	return plan, nil
}

func (r *FloorPlanRepository) ExistsPlanNameForType(ctx context.Context, name string, planType floorplan.PlanType) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM floor_plans WHERE name = $1 AND plan_type = $2)`,
		name, planType.String(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check floor plan name", err)
	}
	return exists, nil
}

func (r *FloorPlanRepository) ListPlans(ctx context.Context, planType *floorplan.PlanType, isActive *bool) ([]*floorplan.FloorPlan, error) {
	var planTypeFilter *string
	if planType != nil {
		s := planType.String()
		planTypeFilter = &s
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+floorPlanColumns+`
		FROM floor_plans
		WHERE ($1::text IS NULL OR plan_type = $1)
		  AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY created_at`,
		planTypeFilter, isActive,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list floor plans", err)
	}
	defer rows.Close()

	var plans []*floorplan.FloorPlan
	for rows.Next() {
		plan, scanErr := scanFloorPlan(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan floor plan", scanErr)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate floor plans", err)
	}
	return plans, nil
}

func (r *FloorPlanRepository) UpdatePlanMetadata(ctx context.Context, tx db.DBTX, plan *floorplan.FloorPlan) error {
	tag, err := tx.Exec(ctx, `
		UPDATE floor_plans SET name = $2, description = $3, updated_at = now() WHERE id = $1`,
		plan.ID(), plan.Name(), pgconv.StringPtrToPgtype(plan.Description()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update floor plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("floor plan not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FloorPlanRepository) DeactivatePlan(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE floor_plans SET is_active = FALSE, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate floor plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("floor plan not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FloorPlanRepository) CreateVersion(ctx context.Context, tx db.DBTX, v *floorplan.Version) (uuid.UUID, error) {
	gridJSON, err := json.Marshal(v.Grid())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode grid", err)
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO floor_plan_versions (id, floor_plan_id, version, grid, change_notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		v.ID(), v.FloorPlanID(), v.Number(), gridJSON,
		pgconv.StringPtrToPgtype(v.ChangeNotes()), v.CreatedBy(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create floor plan version", err)
	}
	return id, nil
}

// BumpCurrentVersion advances the plan's version counter, guarded by the
// counter value the caller read. Losing a race leaves zero rows affected and
// surfaces as a conflict, together with the unique (floor_plan_id, version)
// constraint on the version insert itself.
func (r *FloorPlanRepository) BumpCurrentVersion(ctx context.Context, tx db.DBTX, floorPlanID uuid.UUID, fromVersion int) error {
	tag, err := tx.Exec(ctx, `
		UPDATE floor_plans
		SET current_version = current_version + 1, updated_at = now()
		WHERE id = $1 AND current_version = $2`,
		floorPlanID, fromVersion,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to bump floor plan version", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("concurrent version update", nil, infra.KindConflict)
	}
	return nil
}

const versionColumns = `id, floor_plan_id, version, grid, change_notes, created_by, created_at`

func (r *FloorPlanRepository) LatestVersion(ctx context.Context, floorPlanID uuid.UUID) (*floorplan.Version, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+versionColumns+`
		FROM floor_plan_versions
		WHERE floor_plan_id = $1
		ORDER BY version DESC
		LIMIT 1`,
		floorPlanID,
	)
	version, err := scanVersion(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("floor plan version not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest version", err)
	}
	return version, nil
}

func (r *FloorPlanRepository) GetVersion(ctx context.Context, floorPlanID uuid.UUID, number int) (*floorplan.Version, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+versionColumns+`
		FROM floor_plan_versions
		WHERE floor_plan_id = $1 AND version = $2`,
		floorPlanID, number,
	)
	version, err := scanVersion(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("floor plan version not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find version", err)
	}
	return version, nil
}

func (r *FloorPlanRepository) ListVersions(ctx context.Context, floorPlanID uuid.UUID) ([]*floorplan.Version, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+versionColumns+`
		FROM floor_plan_versions
		WHERE floor_plan_id = $1
		ORDER BY version DESC`,
		floorPlanID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list versions", err)
	}
	defer rows.Close()

	var versions []*floorplan.Version
	for rows.Next() {
		version, scanErr := scanVersion(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan version", scanErr)
		}
		versions = append(versions, version)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate versions", err)
	}
	return versions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFloorPlan(row rowScanner) (*floorplan.FloorPlan, error) {
	var (
		id, createdBy        uuid.UUID
		floorCode, name      string
		planType             string
		rows, columns        int
		currentVersion       int
		isActive             bool
		description          pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &floorCode, &name, &planType, &rows, &columns, &currentVersion, &isActive, &description, &createdBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return floorplan.ReconstructFloorPlan(
		id, floorCode, name, floorplan.PlanType(planType),
		rows, columns, currentVersion, isActive,
		pgconv.StringPtrFromPgtype(description), createdBy,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func scanVersion(row rowScanner) (*floorplan.Version, error) {
	var (
		id, floorPlanID uuid.UUID
		number          int
		gridJSON        []byte
		changeNotes     pgtype.Text
		createdBy       uuid.UUID
		createdAt       pgtype.Timestamptz
	)
	if err := row.Scan(&id, &floorPlanID, &number, &gridJSON, &changeNotes, &createdBy, &createdAt); err != nil {
		return nil, err
	}

	var grid floorplan.Grid
	if err := json.Unmarshal(gridJSON, &grid); err != nil {
		return nil, err
	}

	return floorplan.ReconstructVersion(
		id, floorPlanID, number, grid,
		pgconv.StringPtrFromPgtype(changeNotes), createdBy,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
