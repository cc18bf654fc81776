package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/google/uuid"
)

const maxMazeNameLength = 64

var (
	ErrEmptyMazeName = errors.New("maze name is empty")
	ErrLongMazeName  = errors.New("maze name too long")
)

// StoredMaze is the BSON version of a saved maze for database storage.
// The wall arrays are stored verbatim alongside the generation metadata
// so a saved maze reproduces exactly, independent of engine changes.
type StoredMaze struct {
	ID              uuid.UUID `bson:"_id"`
	OwnerID         uuid.UUID `bson:"ownerId"`
	Name            string    `bson:"name"`
	Width           int       `bson:"width"`
	Height          int       `bson:"height"`
	Seed            int64     `bson:"seed"`
	Algorithm       string    `bson:"algorithm"`
	VerticalWalls   [][]bool  `bson:"verticalWalls"`
	HorizontalWalls [][]bool  `bson:"horizontalWalls"`
	Start           maze.Cell `bson:"start"`
	Goal            maze.Cell `bson:"goal"`
	CreatedAt       time.Time `bson:"createdAt"`
}

// NewStoredMaze wraps a generated maze for persistence. The grid shape
// is validated here so malformed payloads cannot enter the database.
func NewStoredMaze(ownerID uuid.UUID, name string, m *maze.Maze) (*StoredMaze, error) {
	if name == "" {
		return nil, ErrEmptyMazeName
	}
	if len(name) > maxMazeNameLength {
		return nil, ErrLongMazeName
	}
	if m == nil || m.Grid == nil {
		return nil, maze.ErrNilMaze
	}
	if err := m.Grid.Validate(); err != nil {
		return nil, err
	}

	return &StoredMaze{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Name:            name,
		Width:           m.Grid.Width,
		Height:          m.Grid.Height,
		Seed:            m.Seed,
		Algorithm:       m.Algorithm.String(),
		VerticalWalls:   m.Grid.VerticalWalls,
		HorizontalWalls: m.Grid.HorizontalWalls,
		Start:           m.Start,
		Goal:            m.Goal,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// Maze reconstructs the engine maze from the stored record.
func (s *StoredMaze) Maze() (*maze.Maze, error) {
	algorithm, err := maze.ParseAlgorithm(s.Algorithm)
	if err != nil {
		return nil, err
	}

	return &maze.Maze{
		Grid: &maze.WallGrid{
			Width:           s.Width,
			Height:          s.Height,
			VerticalWalls:   s.VerticalWalls,
			HorizontalWalls: s.HorizontalWalls,
		},
		Start:     s.Start,
		Goal:      s.Goal,
		Seed:      s.Seed,
		Algorithm: algorithm,
	}, nil
}
