package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-side cache layer. The concrete
// implementation lives in internal/infrastructure/cache (Redis); tests
// substitute an in-memory fake.
type Cache interface {
	// Get looks up key and unmarshals the stored value into dest.
	// The bool reports whether the key was present; on a miss dest is
	// left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Deleting a missing key is not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
