package maze

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachableCells flood-fills the open-passage graph from the origin and
// returns the number of cells reached.
func reachableCells(g *WallGrid) int {
	visited := make([][]bool, g.Height)
	for y := range visited {
		visited[y] = make([]bool, g.Width)
	}

	stack := []Cell{{X: 0, Y: 0}}
	visited[0][0] = true
	count := 0
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, n := range g.Neighbors(c) {
			if !visited[n.Y][n.X] && g.IsOpen(c, n) {
				visited[n.Y][n.X] = true
				stack = append(stack, n)
			}
		}
	}
	return count
}

func TestGenerateProducesPerfectMaze(t *testing.T) {
	dims := [][2]int{{2, 2}, {5, 5}, {16, 16}, {7, 3}, {1, 9}}
	algorithms := []Algorithm{AlgorithmPrim, AlgorithmKruskal}

	for _, alg := range algorithms {
		for _, d := range dims {
			for _, seed := range []int64{1, 42, 987654321} {
				name := fmt.Sprintf("%s_%dx%d_seed%d", alg, d[0], d[1], seed)
				t.Run(name, func(t *testing.T) {
					m, err := Generate(Config{Width: d[0], Height: d[1], Seed: seed, Algorithm: alg})
					require.NoError(t, err)

					cells := d[0] * d[1]
					// a spanning tree has exactly cells-1 edges and full reachability
					assert.Equal(t, cells-1, m.Grid.OpenPassages())
					assert.Equal(t, cells, reachableCells(m.Grid))
				})
			}
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmPrim, AlgorithmKruskal} {
		t.Run(alg.String(), func(t *testing.T) {
			cfg := Config{Width: 12, Height: 9, Seed: 1337, Algorithm: alg, GoalInCenter: true}

			first, err := Generate(cfg)
			require.NoError(t, err)
			second, err := Generate(cfg)
			require.NoError(t, err)

			assert.Equal(t, first.Grid, second.Grid)
			assert.Equal(t, first.Start, second.Start)
			assert.Equal(t, first.Goal, second.Goal)
			assert.Equal(t, first.Seed, second.Seed)
		})
	}
}

func TestGenerateWithRandMatchesSeededGenerate(t *testing.T) {
	cfg := Config{Width: 8, Height: 8, Seed: 99, Algorithm: AlgorithmKruskal}

	fromSeed, err := Generate(cfg)
	require.NoError(t, err)
	fromRand, err := GenerateWithRand(cfg, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, fromSeed.Grid, fromRand.Grid)
}

func TestGenerateFreshSeed(t *testing.T) {
	// seed 0 must still yield a perfect maze, and must record the seed
	// it actually used
	m, err := Generate(Config{Width: 6, Height: 6, Seed: 0, Algorithm: AlgorithmPrim})
	require.NoError(t, err)

	assert.NotZero(t, m.Seed)
	assert.Equal(t, 35, m.Grid.OpenPassages())
	assert.Equal(t, 36, reachableCells(m.Grid))
}

func TestGenerateSingleCell(t *testing.T) {
	m, err := Generate(Config{Width: 1, Height: 1, Seed: 7, Algorithm: AlgorithmPrim})
	require.NoError(t, err)

	assert.Equal(t, 0, m.Grid.OpenPassages())
	assert.Equal(t, Cell{X: 0, Y: 0}, m.Start)
	assert.Equal(t, Cell{X: 0, Y: 0}, m.Goal)
}

func TestGenerateInvalidDimension(t *testing.T) {
	for _, cfg := range []Config{
		{Width: 0, Height: 8, Seed: 1},
		{Width: 8, Height: 0, Seed: 1},
		{Width: -3, Height: -3, Seed: 1},
	} {
		m, err := Generate(cfg)
		assert.ErrorIs(t, err, ErrInvalidDimension)
		assert.Nil(t, m)
	}
}

func TestGenerateUnknownAlgorithm(t *testing.T) {
	m, err := Generate(Config{Width: 4, Height: 4, Seed: 1, Algorithm: Algorithm(42)})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Nil(t, m)
}

func TestCustomOpensEveryInteriorWall(t *testing.T) {
	w, h := 6, 4
	m, err := Generate(Config{Width: w, Height: h, Seed: 5, Algorithm: AlgorithmCustom})
	require.NoError(t, err)

	// not a spanning tree: every one of the 2wh-w-h interior walls is open
	assert.Equal(t, 2*w*h-w-h, m.Grid.OpenPassages())
	assert.Equal(t, w*h, reachableCells(m.Grid))
}

func TestKruskalEdgeList(t *testing.T) {
	g, err := NewWallGrid(7, 5)
	require.NoError(t, err)

	edges := buildEdgeList(g)
	assert.Len(t, edges, 2*7*5-7-5)

	// every edge exactly once
	seen := make(map[wallEdge]struct{}, len(edges))
	for _, e := range edges {
		_, dup := seen[e]
		assert.False(t, dup, "duplicate edge %v", e)
		seen[e] = struct{}{}
	}
}

func TestAlgorithmNames(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmPrim, AlgorithmKruskal, AlgorithmCustom} {
		parsed, err := ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, parsed)
	}

	_, err := ParseAlgorithm("wilson")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
