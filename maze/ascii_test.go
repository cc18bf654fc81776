package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Run("single closed cell", func(t *testing.T) {
		g, err := NewWallGrid(1, 1)
		require.NoError(t, err)

		want := "+---+\n" +
			"|   |\n" +
			"+---+\n"
		assert.Equal(t, want, g.String())
	})

	t.Run("open passage drops the shared wall", func(t *testing.T) {
		g, err := NewWallGrid(2, 1)
		require.NoError(t, err)
		require.NoError(t, g.RemoveWallBetween(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0}))

		want := "+---+---+\n" +
			"|       |\n" +
			"+---+---+\n"
		assert.Equal(t, want, g.String())
	})

	t.Run("every row is drawn", func(t *testing.T) {
		g, err := NewWallGrid(4, 3)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(g.String(), "\n"), "\n")
		assert.Len(t, lines, 2*3+1)
	})
}
