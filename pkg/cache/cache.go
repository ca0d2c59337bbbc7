// Package cache stores rendered artifacts keyed by document and options.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: never stores anything (--no-cache)
//
// # Keys
//
// [ArtifactKey] derives a key from the document hash and everything that
// affects the output bytes, so a changed option never serves a stale entry:
//
//	key := cache.ArtifactKey(cache.Hash(docJSON), cache.ArtifactKeyOpts{
//	    Format: "svg", Style: "rounded", Padding: 20,
//	})
//	data, ok, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiration. Implementations are safe
// for concurrent use.
type Cache interface {
	// Get returns the stored value and true, or false on a miss. Expired
	// and unreadable entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 7 * 24 * time.Hour
