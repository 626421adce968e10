package floorplan

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("floor plan name is required")
	ErrInvalidDimensions = errors.New("rows and columns must be positive")
	ErrAlreadyInactive   = errors.New("floor plan is already inactive")
	ErrInactivePlan      = errors.New("floor plan is inactive")
)

var floorCodePrefixes = map[PlanType]string{
	PlanTypeDeskArea:  "DSK",
	PlanTypeCafeteria: "CAF",
	PlanTypeParking:   "PKG",
}

// GenerateFloorCode builds a short human-facing code like "DSK-4821".
// Uniqueness is enforced by the store, not here.
func GenerateFloorCode(planType PlanType) string {
	prefix, ok := floorCodePrefixes[planType]
	if !ok {
		prefix = "FLP"
	}
	return fmt.Sprintf("%s-%04d", prefix, rand.IntN(10000))
}

// FloorPlan is a named, typed, versioned 2-D grid describing a physical
// area. Dimensions are fixed at creation; only grid content changes across
// versions. Plans are soft-deleted, never removed.
type FloorPlan struct {
	id             uuid.UUID
	floorCode      string
	name           string
	planType       PlanType
	rows           int
	columns        int
	currentVersion int
	isActive       bool
	description    *string
	createdBy      uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

func NewFloorPlan(name string, planType PlanType, rows, columns int, description *string, createdBy uuid.UUID) (*FloorPlan, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !planType.IsValid() {
		return nil, ErrInvalidPlanType
	}
	if rows < 1 || columns < 1 {
		return nil, ErrInvalidDimensions
	}

	return &FloorPlan{
		id:             uuid.New(),
		floorCode:      GenerateFloorCode(planType),
		name:           strings.TrimSpace(name),
		planType:       planType,
		rows:           rows,
		columns:        columns,
		currentVersion: 1,
		isActive:       true,
		description:    description,
		createdBy:      createdBy,
	}, nil
}

func ReconstructFloorPlan(
	id uuid.UUID,
	floorCode, name string,
	planType PlanType,
	rows, columns, currentVersion int,
	isActive bool,
	description *string,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *FloorPlan {
	return &FloorPlan{
		id:             id,
		floorCode:      floorCode,
		name:           name,
		planType:       planType,
		rows:           rows,
		columns:        columns,
		currentVersion: currentVersion,
		isActive:       isActive,
		description:    description,
		createdBy:      createdBy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// UpdateMetadata renames the plan and replaces its description. Dimensions
// and plan type are immutable after creation.
func (f *FloorPlan) UpdateMetadata(name string, description *string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	f.name = strings.TrimSpace(name)
	f.description = description
	return nil
}

// Deactivate soft-deletes the plan. Versions are retained for audit.
func (f *FloorPlan) Deactivate() error {
	if !f.isActive {
		return ErrAlreadyInactive
	}
	f.isActive = false
	return nil
}

// NextVersion computes the version number a new layout revision receives.
func (f *FloorPlan) NextVersion() int {
	return f.currentVersion + 1
}

func (f *FloorPlan) ID() uuid.UUID        { return f.id }
func (f *FloorPlan) FloorCode() string    { return f.floorCode }
func (f *FloorPlan) Name() string         { return f.name }
func (f *FloorPlan) PlanType() PlanType   { return f.planType }
func (f *FloorPlan) Rows() int            { return f.rows }
func (f *FloorPlan) Columns() int         { return f.columns }
func (f *FloorPlan) CurrentVersion() int  { return f.currentVersion }
func (f *FloorPlan) IsActive() bool       { return f.isActive }
func (f *FloorPlan) Description() *string { return f.description }
func (f *FloorPlan) CreatedBy() uuid.UUID { return f.createdBy }
func (f *FloorPlan) CreatedAt() time.Time { return f.createdAt }
func (f *FloorPlan) UpdatedAt() time.Time { return f.updatedAt }

// Version is an immutable snapshot of a plan's grid. Corrections create a
// new version; an existing version's grid is never mutated.
type Version struct {
	id          uuid.UUID
	floorPlanID uuid.UUID
	version     int
	grid        Grid
	changeNotes *string
	createdBy   uuid.UUID
	createdAt   time.Time
}

func NewVersion(plan *FloorPlan, versionNumber int, grid Grid, changeNotes *string, createdBy uuid.UUID) (*Version, error) {
	if violation := ValidateGrid(grid, plan.Rows(), plan.Columns(), plan.PlanType()); violation != nil {
		return nil, violation
	}
	return &Version{
		id:          uuid.New(),
		floorPlanID: plan.ID(),
		version:     versionNumber,
		grid:        grid,
		changeNotes: changeNotes,
		createdBy:   createdBy,
	}, nil
}

func ReconstructVersion(
	id, floorPlanID uuid.UUID,
	versionNumber int,
	grid Grid,
	changeNotes *string,
	createdBy uuid.UUID,
	createdAt time.Time,
) *Version {
	return &Version{
		id:          id,
		floorPlanID: floorPlanID,
		version:     versionNumber,
		grid:        grid,
		changeNotes: changeNotes,
		createdBy:   createdBy,
		createdAt:   createdAt,
	}
}

func (v *Version) ID() uuid.UUID          { return v.id }
func (v *Version) FloorPlanID() uuid.UUID { return v.floorPlanID }
func (v *Version) Number() int            { return v.version }
func (v *Version) Grid() Grid             { return v.grid }
func (v *Version) ChangeNotes() *string   { return v.changeNotes }
func (v *Version) CreatedBy() uuid.UUID   { return v.createdBy }
func (v *Version) CreatedAt() time.Time   { return v.createdAt }
