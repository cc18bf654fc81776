package maze

import "math"

// WorldPosition maps a cell to the world-space coordinates of its
// center: (cell + 0.5) * cellSize on each axis.
func WorldPosition(c Cell, cellSize float64) (x, y float64) {
	return (float64(c.X) + 0.5) * cellSize, (float64(c.Y) + 0.5) * cellSize
}

// CellContaining maps a world-space position back to the cell that
// contains it, by floor division.
func CellContaining(x, y, cellSize float64) Cell {
	return Cell{
		X: int(math.Floor(x / cellSize)),
		Y: int(math.Floor(y / cellSize)),
	}
}

// StartWorld returns the world-space center of the start cell.
func (m *Maze) StartWorld(cellSize float64) (x, y float64) {
	return WorldPosition(m.Start, cellSize)
}

// GoalWorld returns the world-space center of the goal cell.
func (m *Maze) GoalWorld(cellSize float64) (x, y float64) {
	return WorldPosition(m.Goal, cellSize)
}
