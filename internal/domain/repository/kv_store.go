package repository

import "context"

// Logical keys in the persistent store.
const (
	KeyEntries  = "entries"
	KeySettings = "settings"
)

// KeyValueStore defines the interface for the durable byte store the core
// reads at startup and writes on every mutation.
type KeyValueStore interface {
	// Read retrieves the bytes stored under key. An absent key yields
	// (nil, nil), not an error.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores the bytes under key, replacing any previous value.
	Write(ctx context.Context, key string, value []byte) error

	// Close releases the underlying store.
	Close() error
}
