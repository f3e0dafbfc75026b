// Package ports defines the interfaces (driven and driving ports)
// for the Pomodomate application following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import "context"

// KeyValueStore is the backing store for persisted application state.
// Values are opaque bytes; the services layer owns their encoding.
// This is a driven port (implemented by adapters).
type KeyValueStore interface {
	// Get returns the value stored under key, or domain.ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Clear removes every stored entry.
	Clear(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}
