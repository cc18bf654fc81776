/*
Package maze implements a deterministic grid-maze generation engine.

A maze is represented as a WallGrid: two boolean arrays recording the
walls between horizontally and vertically adjacent cells. Generation
carves passages into a fully closed grid with one of the supported
randomized spanning-tree algorithms (Prim's or Kruskal's), driven by an
explicit RNG so that identical configurations reproduce identical mazes.

The package also computes start/goal placement, maps cells to and from
world coordinates for external consumers, and round-trips mazes through
a self-describing JSON record.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("maze dimensions must be positive")

	// ErrNotAdjacent is returned when a wall operation is requested for
	// cells that do not share an edge. It indicates a bug in the caller,
	// not a recoverable condition.
	ErrNotAdjacent = errors.New("cells are not adjacent")
)

// Cell is a grid coordinate. X grows east, Y grows south.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// directions lists the four neighbor offsets in the fixed order
// north, east, south, west. Neighbor enumeration must keep this order:
// generation consumes RNG entropy in enumeration order, so the order is
// part of the reproducibility contract.
var directions = [4]Cell{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// WallGrid records the walls of a width×height maze.
//
// VerticalWalls[y][x] is the wall between (x,y) and (x+1,y); the entry
// at x == Width-1 is unused, the maze border is implicit. Likewise
// HorizontalWalls[y][x] is the wall between (x,y) and (x,y+1) with the
// last row unused.
type WallGrid struct {
	Width           int
	Height          int
	VerticalWalls   [][]bool
	HorizontalWalls [][]bool
}

// NewWallGrid allocates a fully closed grid: every defined wall entry is
// set. Returns ErrInvalidDimension for non-positive dimensions.
func NewWallGrid(width, height int) (*WallGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	vertical := make([][]bool, height)
	horizontal := make([][]bool, height)
	for y := 0; y < height; y++ {
		vertical[y] = make([]bool, width)
		horizontal[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			vertical[y][x] = true
			horizontal[y][x] = true
		}
	}

	return &WallGrid{
		Width:           width,
		Height:          height,
		VerticalWalls:   vertical,
		HorizontalWalls: horizontal,
	}, nil
}

// InBound reports whether the cell lies inside the grid.
func (g *WallGrid) InBound(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Neighbors returns the in-bounds neighbors of c in the fixed order
// north, east, south, west.
func (g *WallGrid) Neighbors(c Cell) []Cell {
	result := make([]Cell, 0, 4)
	for _, d := range directions {
		neighbor := Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if g.InBound(neighbor) {
			result = append(result, neighbor)
		}
	}
	return result
}

// RemoveWallBetween opens the wall separating two adjacent cells.
// Orientation is derived from the coordinates: cells sharing an X are
// separated by a horizontal wall, cells sharing a Y by a vertical one.
// Returns ErrNotAdjacent when the cells do not share an edge.
func (g *WallGrid) RemoveWallBetween(a, b Cell) error {
	if !g.InBound(a) || !g.InBound(b) {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}

	dx := a.X - b.X
	dy := a.Y - b.Y
	switch {
	case dx == 0 && (dy == 1 || dy == -1):
		g.HorizontalWalls[min(a.Y, b.Y)][a.X] = false
	case dy == 0 && (dx == 1 || dx == -1):
		g.VerticalWalls[a.Y][min(a.X, b.X)] = false
	default:
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}
	return nil
}

// IsOpen reports whether two adjacent cells are connected by an open
// passage. Non-adjacent or out-of-bounds pairs are never open.
func (g *WallGrid) IsOpen(a, b Cell) bool {
	if !g.InBound(a) || !g.InBound(b) {
		return false
	}

	dx := a.X - b.X
	dy := a.Y - b.Y
	switch {
	case dx == 0 && (dy == 1 || dy == -1):
		return !g.HorizontalWalls[min(a.Y, b.Y)][a.X]
	case dy == 0 && (dx == 1 || dx == -1):
		return !g.VerticalWalls[a.Y][min(a.X, b.X)]
	default:
		return false
	}
}

// EastWall reports whether the cell has a wall on its east side. Cells
// on the east border always report true.
func (g *WallGrid) EastWall(c Cell) bool {
	if c.X >= g.Width-1 {
		return true
	}
	return g.VerticalWalls[c.Y][c.X]
}

// SouthWall reports whether the cell has a wall on its south side.
// Cells on the south border always report true.
func (g *WallGrid) SouthWall(c Cell) bool {
	if c.Y >= g.Height-1 {
		return true
	}
	return g.HorizontalWalls[c.Y][c.X]
}

// Validate checks that the wall arrays match the declared dimensions.
// Deserialization is lenient and does not call this; consumers that
// persist grids should.
func (g *WallGrid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, g.Width, g.Height)
	}
	if len(g.VerticalWalls) != g.Height || len(g.HorizontalWalls) != g.Height {
		return fmt.Errorf("wall arrays have %d and %d rows, want %d", len(g.VerticalWalls), len(g.HorizontalWalls), g.Height)
	}
	for y := 0; y < g.Height; y++ {
		if len(g.VerticalWalls[y]) != g.Width || len(g.HorizontalWalls[y]) != g.Width {
			return fmt.Errorf("wall row %d has %d and %d columns, want %d", y, len(g.VerticalWalls[y]), len(g.HorizontalWalls[y]), g.Width)
		}
	}
	return nil
}

// OpenPassages counts the carved passages in the grid. A perfect maze
// has exactly Width*Height - 1 of them.
func (g *WallGrid) OpenPassages() int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x < g.Width-1 && !g.VerticalWalls[y][x] {
				count++
			}
			if y < g.Height-1 && !g.HorizontalWalls[y][x] {
				count++
			}
		}
	}
	return count
}
