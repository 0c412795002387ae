package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// KV is the minimal contract the configuration record needs from a backing
// store: fetch a value by key and replace it wholesale. Values are opaque
// JSON blobs; atomicity of a single Get or Put is the driver's concern.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
