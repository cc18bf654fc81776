// Package mazes provides the HTTP surface for maze generation and
// saved-maze access.
package mazes

import (
	"time"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/maze"
)

// GenerateRequest carries the parameters for one generation run.
type GenerateRequest struct {
	Width        int    `json:"width" binding:"required"`
	Height       int    `json:"height" binding:"required"`
	Seed         int64  `json:"seed"`
	Algorithm    string `json:"algorithm"`
	GoalInCenter bool   `json:"goal_in_center"`
}

// Config maps the request onto an engine configuration. An empty
// algorithm name defaults to Prim's.
func (r *GenerateRequest) Config() (maze.Config, error) {
	algorithm := maze.AlgorithmPrim
	if r.Algorithm != "" {
		var err error
		algorithm, err = maze.ParseAlgorithm(r.Algorithm)
		if err != nil {
			return maze.Config{}, err
		}
	}

	return maze.Config{
		Width:        r.Width,
		Height:       r.Height,
		Seed:         r.Seed,
		Algorithm:    algorithm,
		GoalInCenter: r.GoalInCenter,
	}, nil
}

// MazeResponse is the wire form of a maze: the same self-describing
// record the engine persists, so responses can be stored and fed back.
type MazeResponse struct {
	Width           int       `json:"width"`
	Height          int       `json:"height"`
	Seed            int64     `json:"seed"`
	Algorithm       string    `json:"algorithm"`
	VerticalWalls   [][]bool  `json:"vertical_walls"`
	HorizontalWalls [][]bool  `json:"horizontal_walls"`
	Start           maze.Cell `json:"start"`
	Goal            maze.Cell `json:"goal"`
}

func newMazeResponse(m *maze.Maze) MazeResponse {
	return MazeResponse{
		Width:           m.Grid.Width,
		Height:          m.Grid.Height,
		Seed:            m.Seed,
		Algorithm:       m.Algorithm.String(),
		VerticalWalls:   m.Grid.VerticalWalls,
		HorizontalWalls: m.Grid.HorizontalWalls,
		Start:           m.Start,
		Goal:            m.Goal,
	}
}

// Maze reconstructs the engine maze from the wire form.
func (r *MazeResponse) Maze() (*maze.Maze, error) {
	algorithm, err := maze.ParseAlgorithm(r.Algorithm)
	if err != nil {
		return nil, err
	}

	return &maze.Maze{
		Grid: &maze.WallGrid{
			Width:           r.Width,
			Height:          r.Height,
			VerticalWalls:   r.VerticalWalls,
			HorizontalWalls: r.HorizontalWalls,
		},
		Start:     r.Start,
		Goal:      r.Goal,
		Seed:      r.Seed,
		Algorithm: algorithm,
	}, nil
}

// SaveRequest asks to persist a maze under a name.
type SaveRequest struct {
	Name string       `json:"name" binding:"required"`
	Maze MazeResponse `json:"maze" binding:"required"`
}

// StoredMazeResponse is a saved maze with its metadata.
type StoredMazeResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"created_at"`
	Maze      MazeResponse `json:"maze"`
}

func newStoredMazeResponse(s *dmn.StoredMaze) StoredMazeResponse {
	return StoredMazeResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		Maze: MazeResponse{
			Width:           s.Width,
			Height:          s.Height,
			Seed:            s.Seed,
			Algorithm:       s.Algorithm,
			VerticalWalls:   s.VerticalWalls,
			HorizontalWalls: s.HorizontalWalls,
			Start:           s.Start,
			Goal:            s.Goal,
		},
	}
}

// MazeSummaryResponse is a listing entry for a saved maze.
type MazeSummaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Algorithm string    `json:"algorithm"`
	CreatedAt time.Time `json:"created_at"`
}

func newMazeSummaryResponse(s *dmn.StoredMaze) MazeSummaryResponse {
	return MazeSummaryResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Width:     s.Width,
		Height:    s.Height,
		Algorithm: s.Algorithm,
		CreatedAt: s.CreatedAt,
	}
}
