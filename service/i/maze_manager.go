package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/google/uuid"
)

// MazeManager orchestrates maze generation and saved-maze access.
type MazeManager interface {
	// Generate produces a maze for the configuration, serving repeated
	// deterministic requests from cache where possible.
	Generate(ctx context.Context, cfg maze.Config) (*maze.Maze, error)

	// Save persists a named maze for a user.
	Save(ctx context.Context, ownerID uuid.UUID, name string, m *maze.Maze) (*dmn.StoredMaze, error)

	// ByID retrieves a saved maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.StoredMaze, error)

	// ByOwner lists the mazes saved by a user.
	ByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dmn.StoredMaze, error)
}
