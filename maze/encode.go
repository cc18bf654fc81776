package maze

import (
	"encoding/json"
	"errors"
)

// ErrNilMaze is returned when serializing a nil maze or one without a
// grid.
var ErrNilMaze = errors.New("maze has no grid")

// Defaults applied to fields missing from a persisted record.
const (
	defaultWidth  = 16
	defaultHeight = 16
)

// record is the persisted form of a maze: a self-describing map of
// field names to values. Wall arrays are stored verbatim, row-major.
type record struct {
	Width           int      `json:"width"`
	Height          int      `json:"height"`
	Seed            int64    `json:"seed"`
	Algorithm       string   `json:"algorithm"`
	VerticalWalls   [][]bool `json:"vertical_walls"`
	HorizontalWalls [][]bool `json:"horizontal_walls"`
	Start           Cell     `json:"start"`
	Goal            Cell     `json:"goal"`
}

// Serialize encodes a maze as a JSON record.
func Serialize(m *Maze) ([]byte, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrNilMaze
	}

	return json.Marshal(record{
		Width:           m.Grid.Width,
		Height:          m.Grid.Height,
		Seed:            m.Seed,
		Algorithm:       m.Algorithm.String(),
		VerticalWalls:   m.Grid.VerticalWalls,
		HorizontalWalls: m.Grid.HorizontalWalls,
		Start:           m.Start,
		Goal:            m.Goal,
	})
}

// Deserialize is the inverse of Serialize. Missing fields fall back to
// defaults (16x16, seed 0, Prim's, empty wall arrays). The wall arrays
// are taken verbatim and NOT validated against width/height; callers
// that need the shape invariant should run Grid.Validate on the result.
func Deserialize(data []byte) (*Maze, error) {
	rec := record{
		Width:     defaultWidth,
		Height:    defaultHeight,
		Algorithm: AlgorithmPrim.String(),
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	algorithm, err := ParseAlgorithm(rec.Algorithm)
	if err != nil {
		return nil, err
	}

	grid := &WallGrid{
		Width:           rec.Width,
		Height:          rec.Height,
		VerticalWalls:   rec.VerticalWalls,
		HorizontalWalls: rec.HorizontalWalls,
	}
	return &Maze{
		Grid:      grid,
		Start:     rec.Start,
		Goal:      rec.Goal,
		Seed:      rec.Seed,
		Algorithm: algorithm,
	}, nil
}
