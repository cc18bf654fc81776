package service

import (
	"context"
	"errors"
	"testing"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMazeRepo struct {
	saved map[uuid.UUID]*dmn.StoredMaze
	err   error
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{saved: make(map[uuid.UUID]*dmn.StoredMaze)}
}

func (f *fakeMazeRepo) Save(m *dmn.StoredMaze) error {
	if f.err != nil {
		return f.err
	}
	f.saved[m.ID] = m
	return nil
}

func (f *fakeMazeRepo) ByID(id uuid.UUID) (*dmn.StoredMaze, error) {
	m, ok := f.saved[id]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return m, nil
}

func (f *fakeMazeRepo) ByOwner(ownerID uuid.UUID) ([]*dmn.StoredMaze, error) {
	var result []*dmn.StoredMaze
	for _, m := range f.saved {
		if m.OwnerID == ownerID {
			result = append(result, m)
		}
	}
	return result, nil
}

type fakeMazeCache struct {
	entries  map[string][]byte
	computes int
	err      error
}

func newFakeMazeCache() *fakeMazeCache {
	return &fakeMazeCache{entries: make(map[string][]byte)}
}

func (f *fakeMazeCache) GetOrCompute(ctx context.Context, key string, compute func() ([]byte, error)) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	if payload, ok := f.entries[key]; ok {
		return payload, nil
	}
	f.computes++
	payload, err := compute()
	if err != nil {
		return nil, err
	}
	f.entries[key] = payload
	return payload, nil
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newTestService(t *testing.T, cache *fakeMazeCache) (*MazeService, *fakeMazeRepo) {
	t.Helper()
	repo := newFakeMazeRepo()
	var svc *MazeService
	var err error
	if cache == nil {
		svc, err = NewMazeService(repo, nil, nopLogger{}, &MazeOptions{MaxDimension: 32})
	} else {
		svc, err = NewMazeService(repo, cache, nopLogger{}, &MazeOptions{MaxDimension: 32})
	}
	require.NoError(t, err)
	return svc, repo
}

func TestMazeServiceGenerate(t *testing.T) {
	t.Run("deterministic requests are cached", func(t *testing.T) {
		cache := newFakeMazeCache()
		svc, _ := newTestService(t, cache)
		cfg := maze.Config{Width: 8, Height: 8, Seed: 42, Algorithm: maze.AlgorithmKruskal}

		first, err := svc.Generate(context.Background(), cfg)
		require.NoError(t, err)
		second, err := svc.Generate(context.Background(), cfg)
		require.NoError(t, err)

		assert.Equal(t, 1, cache.computes, "second request must come from cache")
		assert.Equal(t, first, second)
	})

	t.Run("seed zero bypasses the cache", func(t *testing.T) {
		cache := newFakeMazeCache()
		svc, _ := newTestService(t, cache)
		cfg := maze.Config{Width: 8, Height: 8, Seed: 0, Algorithm: maze.AlgorithmPrim}

		m, err := svc.Generate(context.Background(), cfg)
		require.NoError(t, err)

		assert.NotZero(t, m.Seed)
		assert.Zero(t, cache.computes)
		assert.Empty(t, cache.entries)
	})

	t.Run("cache failure falls back to direct generation", func(t *testing.T) {
		cache := newFakeMazeCache()
		cache.err = errors.New("redis down")
		svc, _ := newTestService(t, cache)
		cfg := maze.Config{Width: 6, Height: 6, Seed: 7, Algorithm: maze.AlgorithmPrim}

		m, err := svc.Generate(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, 35, m.Grid.OpenPassages())
	})

	t.Run("rejects oversized dimensions", func(t *testing.T) {
		svc, _ := newTestService(t, newFakeMazeCache())

		_, err := svc.Generate(context.Background(), maze.Config{Width: 33, Height: 8, Seed: 1})
		assert.ErrorIs(t, err, ErrDimensionTooLarge)
	})

	t.Run("propagates invalid dimensions", func(t *testing.T) {
		svc, _ := newTestService(t, newFakeMazeCache())

		_, err := svc.Generate(context.Background(), maze.Config{Width: 0, Height: 8, Seed: 1})
		assert.ErrorIs(t, err, maze.ErrInvalidDimension)
	})

	t.Run("works without a cache", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		m, err := svc.Generate(context.Background(), maze.Config{Width: 5, Height: 5, Seed: 11, Algorithm: maze.AlgorithmKruskal})
		require.NoError(t, err)
		assert.Equal(t, 24, m.Grid.OpenPassages())
	})
}

func TestMazeServiceSave(t *testing.T) {
	svc, repo := newTestService(t, newFakeMazeCache())
	owner := uuid.New()

	m, err := maze.Generate(maze.Config{Width: 8, Height: 8, Seed: 42, Algorithm: maze.AlgorithmPrim})
	require.NoError(t, err)

	t.Run("saves and reloads", func(t *testing.T) {
		stored, err := svc.Save(context.Background(), owner, "first run", m)
		require.NoError(t, err)

		loaded, err := svc.ByID(context.Background(), stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored, loaded)

		reconstructed, err := loaded.Maze()
		require.NoError(t, err)
		assert.Equal(t, m.Grid, reconstructed.Grid)
	})

	t.Run("lists by owner", func(t *testing.T) {
		mazes, err := svc.ByOwner(context.Background(), owner)
		require.NoError(t, err)
		assert.Len(t, mazes, 1)
		assert.Len(t, repo.saved, 1)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		_, err := svc.Save(context.Background(), owner, "", m)
		assert.Error(t, err)
	})

	t.Run("rejects malformed grids", func(t *testing.T) {
		bad, err := maze.Deserialize([]byte(`{"width": 8, "height": 8, "vertical_walls": [[true]], "horizontal_walls": [[true]]}`))
		require.NoError(t, err)

		_, err = svc.Save(context.Background(), owner, "bad", bad)
		assert.Error(t, err)
	})
}
