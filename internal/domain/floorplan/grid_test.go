//go:build unit

package floorplan_test

import (
	"testing"

	"officegrid/internal/domain/floorplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deskCell(label string) floorplan.Cell {
	return floorplan.Cell{CellType: floorplan.CellTypeDesk, Label: label, IsActive: true}
}

func pathCell() floorplan.Cell {
	return floorplan.Cell{CellType: floorplan.CellTypePath, IsActive: true}
}

func deskGrid3x3() floorplan.Grid {
	return floorplan.Grid{
		{deskCell("D1"), pathCell(), deskCell("D2")},
		{pathCell(), pathCell(), pathCell()},
		{deskCell("D3"), pathCell(), deskCell("D4")},
	}
}

func TestValidateGrid(t *testing.T) {
	t.Run("valid desk grid", func(t *testing.T) {
		violation := floorplan.ValidateGrid(deskGrid3x3(), 3, 3, floorplan.PlanTypeDeskArea)
		assert.Nil(t, violation)
	})

	t.Run("unknown plan type", func(t *testing.T) {
		violation := floorplan.ValidateGrid(deskGrid3x3(), 3, 3, floorplan.PlanType("garage"))
		require.NotNil(t, violation)
		assert.Equal(t, -1, violation.Row)
	})

	t.Run("wrong row count", func(t *testing.T) {
		grid := deskGrid3x3()[:2]
		violation := floorplan.ValidateGrid(grid, 3, 3, floorplan.PlanTypeDeskArea)
		require.NotNil(t, violation)
		assert.Equal(t, -1, violation.Row)
		assert.Contains(t, violation.Reason, "3 rows")
	})

	t.Run("ragged row", func(t *testing.T) {
		grid := deskGrid3x3()
		grid[1] = grid[1][:2]
		violation := floorplan.ValidateGrid(grid, 3, 3, floorplan.PlanTypeDeskArea)
		require.NotNil(t, violation)
		assert.Equal(t, 1, violation.Row)
		assert.Equal(t, -1, violation.Col)
	})

	t.Run("missing cell type", func(t *testing.T) {
		grid := deskGrid3x3()
		grid[2][1].CellType = ""
		violation := floorplan.ValidateGrid(grid, 3, 3, floorplan.PlanTypeDeskArea)
		require.NotNil(t, violation)
		assert.Equal(t, 2, violation.Row)
		assert.Equal(t, 1, violation.Col)
	})

	t.Run("cell type not allowed on plan", func(t *testing.T) {
		grid := deskGrid3x3()
		grid[0][1] = floorplan.Cell{CellType: floorplan.CellTypeParkingSlot, Label: "P1", IsActive: true}
		violation := floorplan.ValidateGrid(grid, 3, 3, floorplan.PlanTypeDeskArea)
		require.NotNil(t, violation)
		assert.Equal(t, 0, violation.Row)
		assert.Equal(t, 1, violation.Col)
	})

	t.Run("conference room allowed on desk area", func(t *testing.T) {
		grid := deskGrid3x3()
		grid[0][1] = floorplan.Cell{CellType: floorplan.CellTypeConferenceRoom, Label: "C1", IsActive: true}
		assert.Nil(t, floorplan.ValidateGrid(grid, 3, 3, floorplan.PlanTypeDeskArea))
	})

	t.Run("invalid direction", func(t *testing.T) {
		d := floorplan.Direction("sideways")
		grid := floorplan.Grid{{
			{CellType: floorplan.CellTypeParkingSlot, Label: "P1", Direction: &d, IsActive: true},
		}}
		violation := floorplan.ValidateGrid(grid, 1, 1, floorplan.PlanTypeParking)
		require.NotNil(t, violation)
		assert.Equal(t, 0, violation.Row)
		assert.Equal(t, 0, violation.Col)
	})

	t.Run("capacity below one", func(t *testing.T) {
		capacity := 0
		grid := floorplan.Grid{{
			{CellType: floorplan.CellTypeCafeteriaTable, Label: "T1", Capacity: &capacity, IsActive: true},
		}}
		violation := floorplan.ValidateGrid(grid, 1, 1, floorplan.PlanTypeCafeteria)
		require.NotNil(t, violation)
		assert.Contains(t, violation.Reason, "capacity")
	})

	t.Run("first violation wins in row-major order", func(t *testing.T) {
		grid := deskGrid3x3()
		grid[0][2].CellType = floorplan.CellTypeCafeteriaTable
		grid[2][0].CellType = ""
		violation := floorplan.ValidateGrid(grid, 3, 3, floorplan.PlanTypeDeskArea)
		require.NotNil(t, violation)
		assert.Equal(t, 0, violation.Row)
		assert.Equal(t, 2, violation.Col)
	})
}

func TestGridCellAt(t *testing.T) {
	grid := deskGrid3x3()

	cell, err := grid.CellAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "D1", cell.Label)

	_, err = grid.CellAt(3, 0)
	assert.ErrorIs(t, err, floorplan.ErrOutOfBounds)

	_, err = grid.CellAt(0, 3)
	assert.ErrorIs(t, err, floorplan.ErrOutOfBounds)

	_, err = grid.CellAt(-1, 0)
	assert.ErrorIs(t, err, floorplan.ErrOutOfBounds)
}

func TestGridCellsByType(t *testing.T) {
	grid := deskGrid3x3()

	t.Run("row-major scan order", func(t *testing.T) {
		refs := grid.CellsByType(floorplan.CellTypeDesk)
		require.Len(t, refs, 4)
		labels := make([]string, len(refs))
		for i, ref := range refs {
			labels[i] = ref.Cell.Label
		}
		assert.Equal(t, []string{"D1", "D2", "D3", "D4"}, labels)
	})

	t.Run("excluding occupied labels", func(t *testing.T) {
		occupied := map[string]struct{}{"D1": {}, "D3": {}}
		refs := grid.CellsByTypeExcluding(floorplan.CellTypeDesk, occupied)
		require.Len(t, refs, 2)
		assert.Equal(t, "D2", refs[0].Cell.Label)
		assert.Equal(t, "D4", refs[1].Cell.Label)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, grid.CellsByType(floorplan.CellTypeParkingSlot))
	})
}
