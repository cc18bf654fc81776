package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrUnknownAlgorithm is returned when a Config names an algorithm the
// engine does not implement.
var ErrUnknownAlgorithm = errors.New("unknown generation algorithm")

// Algorithm selects the carving strategy used by Generate.
type Algorithm int

const (
	// AlgorithmPrim carves with randomized Prim's frontier expansion.
	// Produces short, branchy passages.
	AlgorithmPrim Algorithm = iota

	// AlgorithmKruskal carves with edge-randomized Kruskal's over a
	// union-find structure. Produces a more uniform passage texture.
	AlgorithmKruskal

	// AlgorithmCustom opens every interior wall. The result is a fully
	// open arena, not a perfect maze; it exists as a fixture for
	// consumers that want an unobstructed grid.
	AlgorithmCustom
)

var algorithmNames = map[Algorithm]string{
	AlgorithmPrim:    "prim",
	AlgorithmKruskal: "kruskal",
	AlgorithmCustom:  "custom",
}

// String returns the persisted name of the algorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm maps a persisted name back to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Config holds the parameters of one generation run.
type Config struct {
	Width  int
	Height int

	// Seed drives the RNG. Zero means "fresh nondeterministic seed each
	// run"; any other value makes the output fully deterministic for
	// identical dimensions and algorithm.
	Seed int64

	Algorithm Algorithm

	// GoalInCenter places the goal at the center cell instead of the
	// far corner.
	GoalInCenter bool
}

// Maze is the result of one generation run. It is not mutated after
// generation; regenerating produces a fresh value.
type Maze struct {
	Grid      *WallGrid
	Start     Cell
	Goal      Cell
	Seed      int64
	Algorithm Algorithm
}

// Generate runs the configured algorithm over a fresh, fully closed
// grid. When cfg.Seed is zero a time-derived seed is used and recorded
// on the result, so any maze can be regenerated from its own metadata.
func Generate(cfg Config) (*Maze, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m, err := GenerateWithRand(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	m.Seed = seed
	return m, nil
}

// GenerateWithRand is Generate with a caller-owned RNG. The RNG is
// consumed in a fixed order, so two calls with identically seeded RNGs
// and equal configurations produce identical mazes. Each call needs its
// own RNG and grid; nothing is shared between concurrent runs.
func GenerateWithRand(cfg Config, rng *rand.Rand) (*Maze, error) {
	grid, err := NewWallGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	switch cfg.Algorithm {
	case AlgorithmPrim:
		carvePrim(grid, rng)
	case AlgorithmKruskal:
		carveKruskal(grid, rng)
	case AlgorithmCustom:
		openAllWalls(grid)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, cfg.Algorithm)
	}

	start, goal := StartGoal(cfg)
	return &Maze{
		Grid:      grid,
		Start:     start,
		Goal:      goal,
		Seed:      cfg.Seed,
		Algorithm: cfg.Algorithm,
	}, nil
}

// openAllWalls removes every interior wall, leaving an open arena.
func openAllWalls(g *WallGrid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x < g.Width-1 {
				g.VerticalWalls[y][x] = false
			}
			if y < g.Height-1 {
				g.HorizontalWalls[y][x] = false
			}
		}
	}
}
