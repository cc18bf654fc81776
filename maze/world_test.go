package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldPosition(t *testing.T) {
	x, y := WorldPosition(Cell{X: 0, Y: 0}, 2.0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)

	x, y = WorldPosition(Cell{X: 7, Y: 3}, 0.5)
	assert.InDelta(t, 3.75, x, 1e-9)
	assert.InDelta(t, 1.75, y, 1e-9)
}

func TestCellContaining(t *testing.T) {
	assert.Equal(t, Cell{X: 0, Y: 0}, CellContaining(0.1, 1.9, 2.0))
	assert.Equal(t, Cell{X: 3, Y: 1}, CellContaining(1.6, 0.8, 0.5))

	// the cell center maps back to the cell it came from
	for _, c := range []Cell{{X: 0, Y: 0}, {X: 5, Y: 2}, {X: 15, Y: 15}} {
		x, y := WorldPosition(c, 1.25)
		assert.Equal(t, c, CellContaining(x, y, 1.25))
	}
}

func TestMazeWorldAccessors(t *testing.T) {
	m, err := Generate(Config{Width: 16, Height: 16, Seed: 3, Algorithm: AlgorithmPrim, GoalInCenter: true})
	require.NoError(t, err)

	sx, sy := m.StartWorld(2.0)
	assert.Equal(t, 1.0, sx)
	assert.Equal(t, 1.0, sy)

	gx, gy := m.GoalWorld(2.0)
	assert.Equal(t, 15.0, gx)
	assert.Equal(t, 15.0, gy)
}
