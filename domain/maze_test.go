package domain

import (
	"testing"

	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoredMaze(t *testing.T) {
	owner := uuid.New()
	m, err := maze.Generate(maze.Config{Width: 8, Height: 8, Seed: 42, Algorithm: maze.AlgorithmKruskal, GoalInCenter: true})
	require.NoError(t, err)

	t.Run("wraps a generated maze verbatim", func(t *testing.T) {
		stored, err := NewStoredMaze(owner, "weekly challenge", m)
		require.NoError(t, err)

		assert.Equal(t, owner, stored.OwnerID)
		assert.Equal(t, "kruskal", stored.Algorithm)
		assert.Equal(t, int64(42), stored.Seed)
		assert.Equal(t, m.Grid.VerticalWalls, stored.VerticalWalls)
		assert.False(t, stored.CreatedAt.IsZero())

		reconstructed, err := stored.Maze()
		require.NoError(t, err)
		assert.Equal(t, m, reconstructed)
	})

	t.Run("rejects empty and oversized names", func(t *testing.T) {
		_, err := NewStoredMaze(owner, "", m)
		assert.ErrorIs(t, err, ErrEmptyMazeName)

		long := make([]byte, 65)
		for i := range long {
			long[i] = 'a'
		}
		_, err = NewStoredMaze(owner, string(long), m)
		assert.ErrorIs(t, err, ErrLongMazeName)
	})

	t.Run("rejects nil and malformed mazes", func(t *testing.T) {
		_, err := NewStoredMaze(owner, "nope", nil)
		assert.ErrorIs(t, err, maze.ErrNilMaze)

		bad, err := maze.Deserialize([]byte(`{"width": 8, "height": 8, "vertical_walls": [[true]], "horizontal_walls": [[true]]}`))
		require.NoError(t, err)
		_, err = NewStoredMaze(owner, "nope", bad)
		assert.Error(t, err)
	})
}
