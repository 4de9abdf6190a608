package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer.
// Values are stored as JSON so any serializable type can be cached.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found is false on a miss; dest is then left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
