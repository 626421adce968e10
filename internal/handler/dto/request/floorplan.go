package request

import (
	"strings"

	"officegrid/internal/domain/floorplan"
)

type CellRequest struct {
	CellType  string  `json:"cell_type" binding:"required"`
	Label     *string `json:"label,omitempty"`
	Direction *string `json:"direction,omitempty"`
	Capacity  *int    `json:"capacity,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (c CellRequest) toDomain() floorplan.Cell {
	cell := floorplan.Cell{
		CellType: floorplan.CellType(c.CellType),
		Capacity: c.Capacity,
		IsActive: true,
	}
	if c.Label != nil {
		cell.Label = strings.TrimSpace(*c.Label)
	}
	if c.Direction != nil {
		d := floorplan.Direction(*c.Direction)
		cell.Direction = &d
	}
	if c.IsActive != nil {
		cell.IsActive = *c.IsActive
	}
	return cell
}

type CreateFloorPlanRequest struct {
	Name        string          `json:"name" binding:"required"`
	PlanType    string          `json:"plan_type" binding:"required"`
	Rows        int             `json:"rows" binding:"required,min=1"`
	Cols        int             `json:"cols" binding:"required,min=1"`
	Description *string         `json:"description,omitempty"`
	Grid        [][]CellRequest `json:"grid" binding:"required"`
}

func (r CreateFloorPlanRequest) GetName() string {
	return strings.TrimSpace(r.Name)
}

func (r CreateFloorPlanRequest) GridToDomain() floorplan.Grid {
	return gridToDomain(r.Grid)
}

type UpdateFloorPlanRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateFloorPlanRequest) GetName() *string {
	if r.Name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type CreateVersionRequest struct {
	Grid        [][]CellRequest `json:"grid" binding:"required"`
	ChangeNotes *string         `json:"change_notes,omitempty"`
}

func (r CreateVersionRequest) GridToDomain() floorplan.Grid {
	return gridToDomain(r.Grid)
}

func gridToDomain(rows [][]CellRequest) floorplan.Grid {
	grid := make(floorplan.Grid, len(rows))
	for i, row := range rows {
		grid[i] = make([]floorplan.Cell, len(row))
		for j, cell := range row {
			grid[i][j] = cell.toDomain()
		}
	}
	return grid
}
