// Package cache provides a Redis-backed cache for serialized mazes.
package cache

import (
	"context"
	"time"

	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisMazeCache caches serialized mazes in Redis with TTL support.
// A redsync mutex per key single-flights concurrent identical
// generation requests across all API instances.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

var _ i.MazeCache = &RedisMazeCache{}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (*RedisMazeCache, error) {
	mazeCache := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	mazeCache.locker = redsync.New(pool)
	return mazeCache, nil
}

// GetOrCompute returns the cached payload for key, or computes, stores
// and returns it. The per-key lock guarantees compute runs at most once
// for concurrent callers; late arrivals find the stored payload after
// acquiring the lock.
func (c *RedisMazeCache) GetOrCompute(ctx context.Context, key string, compute func() ([]byte, error)) ([]byte, error) {
	if payload, err := c.client.Get(ctx, key).Bytes(); err == nil {
		return payload, nil
	}

	mutex := c.locker.NewMutex(key + ":gen_lock")
	if err := mutex.Lock(); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	// another caller may have filled the key while we waited
	if payload, err := c.client.Get(ctx, key).Bytes(); err == nil {
		return payload, nil
	}

	payload, err := compute()
	if err != nil {
		return nil, err
	}

	_ = c.client.Set(ctx, key, payload, c.ttl).Err()

	return payload, nil
}
