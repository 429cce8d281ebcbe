package ports

import (
	"context"
	"time"
)

// Cache is a best-effort byte store with per-key TTLs. Implementations
// must never fail a request: lookup problems report a miss, write
// problems are logged and dropped.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
