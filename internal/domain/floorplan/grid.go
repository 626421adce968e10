package floorplan

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlanType = errors.New("invalid floor plan type")
	ErrOutOfBounds     = errors.New("cell coordinates out of bounds")
)

// Cell is one grid position within a floor plan version. Kind-specific
// metadata (direction for parking slots, capacity for cafeteria tables)
// is optional and validated at the grid boundary.
type Cell struct {
	CellType  CellType   `json:"cell_type"`
	Label     string     `json:"label,omitempty"`
	Direction *Direction `json:"direction,omitempty"`
	Capacity  *int       `json:"capacity,omitempty"`
	IsActive  bool       `json:"is_active"`
}

// Grid is the rows x columns cell matrix of a single version.
type Grid [][]Cell

// GridViolation reports the first rule broken by a candidate grid, with the
// offending coordinates. Row/Col are -1 when the violation is about the grid
// shape rather than a specific cell.
type GridViolation struct {
	Row    int
	Col    int
	Reason string
}

func (v *GridViolation) Error() string {
	if v.Row < 0 {
		return "invalid grid: " + v.Reason
	}
	return fmt.Sprintf("invalid grid at (%d, %d): %s", v.Row, v.Col, v.Reason)
}

// ValidateGrid checks shape and per-cell rules for a grid destined for a plan
// of the given type. It returns the first violation in row-major order so
// error reporting stays deterministic.
func ValidateGrid(grid Grid, rows, columns int, planType PlanType) *GridViolation {
	if !planType.IsValid() {
		return &GridViolation{Row: -1, Col: -1, Reason: "unknown plan type " + planType.String()}
	}
	if len(grid) != rows {
		return &GridViolation{Row: -1, Col: -1, Reason: fmt.Sprintf("grid must have exactly %d rows, got %d", rows, len(grid))}
	}

	for rowIdx, row := range grid {
		if len(row) != columns {
			return &GridViolation{Row: rowIdx, Col: -1, Reason: fmt.Sprintf("row must have exactly %d columns, got %d", columns, len(row))}
		}
		for colIdx, cell := range row {
			if cell.CellType == "" {
				return &GridViolation{Row: rowIdx, Col: colIdx, Reason: "missing cell_type"}
			}
			if !CellTypeAllowed(planType, cell.CellType) {
				return &GridViolation{
					Row: rowIdx, Col: colIdx,
					Reason: fmt.Sprintf("cell_type %q is not allowed on a %s plan", cell.CellType, planType),
				}
			}
			if cell.Direction != nil && !cell.Direction.IsValid() {
				return &GridViolation{Row: rowIdx, Col: colIdx, Reason: fmt.Sprintf("invalid direction %q", *cell.Direction)}
			}
			if cell.Capacity != nil && *cell.Capacity < 1 {
				return &GridViolation{Row: rowIdx, Col: colIdx, Reason: "capacity must be at least 1"}
			}
		}
	}
	return nil
}

// CellAt returns the cell at (row, col). Bounds violations are a distinct
// error from wrong-cell-type checks done by callers.
func (g Grid) CellAt(row, col int) (Cell, error) {
	if row < 0 || row >= len(g) {
		return Cell{}, ErrOutOfBounds
	}
	if col < 0 || col >= len(g[row]) {
		return Cell{}, ErrOutOfBounds
	}
	return g[row][col], nil
}

// CellRef is a located cell, as returned by grid scans.
type CellRef struct {
	Row  int
	Col  int
	Cell Cell
}

// CellsByType scans the grid in row-major order and returns every cell of
// the requested type. Scan order is part of the contract: auto-assignment
// takes the first match.
func (g Grid) CellsByType(cellType CellType) []CellRef {
	var refs []CellRef
	for rowIdx, row := range g {
		for colIdx, cell := range row {
			if cell.CellType == cellType {
				refs = append(refs, CellRef{Row: rowIdx, Col: colIdx, Cell: cell})
			}
		}
	}
	return refs
}

// CellsByTypeExcluding is CellsByType minus cells whose label is in the
// occupied set. Backs every "list available X" operation.
func (g Grid) CellsByTypeExcluding(cellType CellType, occupiedLabels map[string]struct{}) []CellRef {
	var refs []CellRef
	for _, ref := range g.CellsByType(cellType) {
		if _, occupied := occupiedLabels[ref.Cell.Label]; occupied {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}
