package response

import (
	"time"

	"officegrid/internal/domain/floorplan"

	"github.com/google/uuid"
)

type FloorPlanResponse struct {
	ID             uuid.UUID `json:"id"`
	FloorCode      string    `json:"floorCode"`
	Name           string    `json:"name"`
	PlanType       string    `json:"planType"`
	Rows           int       `json:"rows"`
	Cols           int       `json:"cols"`
	CurrentVersion int       `json:"currentVersion"`
	IsActive       bool      `json:"isActive"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type FloorPlanDetailResponse struct {
	FloorPlanResponse
	Grid floorplan.Grid `json:"grid"`
}

type VersionResponse struct {
	ID          uuid.UUID      `json:"id"`
	FloorPlanID uuid.UUID      `json:"floorPlanId"`
	Version     int            `json:"version"`
	Grid        floorplan.Grid `json:"grid"`
	ChangeNotes *string        `json:"changeNotes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type CellRefResponse struct {
	Row  int            `json:"row"`
	Col  int            `json:"col"`
	Cell floorplan.Cell `json:"cell"`
}

func FromFloorPlan(plan *floorplan.FloorPlan) *FloorPlanResponse {
	return &FloorPlanResponse{
		ID:             plan.ID(),
		FloorCode:      plan.FloorCode(),
		Name:           plan.Name(),
		PlanType:       plan.PlanType().String(),
		Rows:           plan.Rows(),
		Cols:           plan.Columns(),
		CurrentVersion: plan.CurrentVersion(),
		IsActive:       plan.IsActive(),
		Description:    plan.Description(),
		CreatedAt:      plan.CreatedAt(),
		UpdatedAt:      plan.UpdatedAt(),
	}
}

func FromFloorPlanWithGrid(plan *floorplan.FloorPlan, version *floorplan.Version) *FloorPlanDetailResponse {
	return &FloorPlanDetailResponse{
		FloorPlanResponse: *FromFloorPlan(plan),
		Grid:              version.Grid(),
	}
}

func FromFloorPlans(plans []*floorplan.FloorPlan) []*FloorPlanResponse {
	responses := make([]*FloorPlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = FromFloorPlan(plan)
	}
	return responses
}

func FromVersion(v *floorplan.Version) *VersionResponse {
	return &VersionResponse{
		ID:          v.ID(),
		FloorPlanID: v.FloorPlanID(),
		Version:     v.Number(),
		Grid:        v.Grid(),
		ChangeNotes: v.ChangeNotes(),
		CreatedAt:   v.CreatedAt(),
	}
}

func FromVersions(versions []*floorplan.Version) []*VersionResponse {
	responses := make([]*VersionResponse, len(versions))
	for i, v := range versions {
		responses[i] = FromVersion(v)
	}
	return responses
}

func FromCellRefs(refs []floorplan.CellRef) []CellRefResponse {
	responses := make([]CellRefResponse, len(refs))
	for i, ref := range refs {
		responses[i] = CellRefResponse{Row: ref.Row, Col: ref.Col, Cell: ref.Cell}
	}
	return responses
}
