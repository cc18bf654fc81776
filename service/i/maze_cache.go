package i

import "context"

// MazeCache caches serialized mazes keyed by their generation
// parameters.
type MazeCache interface {
	// GetOrCompute returns the cached payload for key, or runs compute,
	// stores its result and returns it. Implementations must ensure
	// that concurrent calls for the same key run compute at most once.
	GetOrCompute(ctx context.Context, key string, compute func() ([]byte, error)) ([]byte, error)
}
