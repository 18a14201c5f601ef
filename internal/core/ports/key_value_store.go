package ports

import "context"

// KeyValueStore is the minimal persistence contract this subsystem consumes.
// Values are opaque, newline-free strings; keys are namespaced with a prefix
// (orders live under "order:").
//
// A Set followed by a List/Get within the same process must observe the new
// value (no stale-read window). Implementations overwrite on Set.
type KeyValueStore interface {
	// List enumerates all keys that start with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Get retrieves the value stored under key.
	// The second return value reports whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, overwriting any existing value.
	Set(ctx context.Context, key, value string) error
}
