package service

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/logging"
	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 64

	// cache key per generation config; seed-0 requests never hit the
	// cache, so every key identifies exactly one maze
	cacheKeyFmt = "mazegen:cfg:%dx%d:s%d:%s:goal_%t"
)

// ErrDimensionTooLarge is returned when a request exceeds the service's
// dimension cap. The engine itself has no upper bound; the cap protects
// the API from oversized payloads.
var ErrDimensionTooLarge = errors.New("maze dimension exceeds the allowed maximum")

// MazeOptions configures a MazeService.
type MazeOptions struct {
	// MaxDimension caps requested width and height. Non-positive values
	// fall back to the default.
	MaxDimension int
}

// MazeService orchestrates the generation engine: deterministic
// requests are served from cache and single-flighted, saved mazes go
// through the repository.
type MazeService struct {
	repo         i.MazeRepo
	cache        i.MazeCache
	logger       logging.Logger
	maxDimension int
}

var _ i.MazeManager = &MazeService{}

// NewMazeService creates a MazeService. The cache may be nil, in which
// case every request generates.
func NewMazeService(repo i.MazeRepo, cache i.MazeCache, logger logging.Logger, opts *MazeOptions) (*MazeService, error) {
	if repo == nil {
		return nil, errors.New("maze service requires a repository")
	}
	if logger == nil {
		return nil, errors.New("maze service requires a logger")
	}

	maxDimension := defaultMaxDimension
	if opts != nil && opts.MaxDimension > 0 {
		maxDimension = opts.MaxDimension
	}

	return &MazeService{
		repo:         repo,
		cache:        cache,
		logger:       logger,
		maxDimension: maxDimension,
	}, nil
}

// Generate produces a maze for the configuration. Nonzero seeds are
// deterministic, so their results are cached by configuration key and
// concurrent identical requests generate at most once. Seed-0 requests
// are fresh every time and bypass the cache.
func (s *MazeService) Generate(ctx context.Context, cfg maze.Config) (*maze.Maze, error) {
	if cfg.Width > s.maxDimension || cfg.Height > s.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d > %d", ErrDimensionTooLarge, cfg.Width, cfg.Height, s.maxDimension)
	}

	if cfg.Seed == 0 || s.cache == nil {
		return maze.Generate(cfg)
	}

	key := cacheKey(cfg)
	payload, err := s.cache.GetOrCompute(ctx, key, func() ([]byte, error) {
		m, err := maze.Generate(cfg)
		if err != nil {
			return nil, err
		}
		return maze.Serialize(m)
	})
	if err != nil {
		if errors.Is(err, maze.ErrInvalidDimension) || errors.Is(err, maze.ErrUnknownAlgorithm) {
			return nil, err
		}
		// cache infrastructure failure; generation is deterministic, so
		// fall back to generating directly
		s.logger.Warning(fmt.Sprintf("Maze cache unavailable for %s: %v", key, err))
		return maze.Generate(cfg)
	}

	return maze.Deserialize(payload)
}

// Save persists a named maze for a user.
func (s *MazeService) Save(ctx context.Context, ownerID uuid.UUID, name string, m *maze.Maze) (*dmn.StoredMaze, error) {
	stored, err := dmn.NewStoredMaze(ownerID, name, m)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(stored); err != nil {
		s.logger.Error(fmt.Sprintf("Saving maze %q for %s: %v", name, ownerID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Saved maze %q (%dx%d, %s) for %s", name, stored.Width, stored.Height, stored.Algorithm, ownerID))
	return stored, nil
}

// ByID retrieves a saved maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.StoredMaze, error) {
	return s.repo.ByID(id)
}

// ByOwner lists the mazes saved by a user.
func (s *MazeService) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dmn.StoredMaze, error) {
	return s.repo.ByOwner(ownerID)
}

func cacheKey(cfg maze.Config) string {
	return fmt.Sprintf(cacheKeyFmt, cfg.Width, cfg.Height, cfg.Seed, cfg.Algorithm, cfg.GoalInCenter)
}
