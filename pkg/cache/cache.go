// Package cache provides byte-level caching for rendered layouts.
//
// Three backends are available: [FileCache] for CLI usage, [RedisCache] for
// server deployments, and [NullCache] to disable caching entirely. All
// backends store opaque bytes under string keys with an optional TTL.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is the storage contract shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Entry lifetimes by content kind. Rendered documents can change when the
// document changes, so they expire sooner than the deterministic built-in
// figures.
const (
	TTLRender = 24 * time.Hour
	TTLFigure = 7 * 24 * time.Hour
)

// Backend names accepted by [Open].
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Open constructs a cache by backend name. target is the directory for the
// file backend and the connection URL for the redis backend; the none
// backend ignores it.
func Open(backend, target string) (Cache, error) {
	switch backend {
	case BackendFile:
		return NewFileCache(target)
	case BackendRedis:
		return NewRedisCache(target)
	case BackendNone:
		return NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
