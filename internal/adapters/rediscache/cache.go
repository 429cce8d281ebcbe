// Package rediscache implements the byte cache over Redis, for deployments
// where search and trending results should survive restarts and be shared
// across replicas.
package rediscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/segue/internal/core/ports"
)

// Cache wraps a Redis client. Failures are logged and treated as misses:
// a broken cache must never fail a request.
type Cache struct {
	client *redis.Client
	log    zerolog.Logger
}

// compile-time interface assertion
var _ ports.Cache = (*Cache)(nil)

func New(client *redis.Client, log zerolog.Logger) *Cache {
	return &Cache{
		client: client,
		log:    log.With().Str("component", "rediscache").Logger(),
	}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return nil, false
	}
	return raw, true
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
