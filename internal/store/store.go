// Package store provides the persistent key-value store backing all entity
// collections. Each collection is serialized as one JSON document under a
// fixed key and is always read and written in its entirety; there are no
// partial updates and no cross-key transactions. The last writer wins.
package store

import "context"

// Fixed collection keys. Every entity collection lives under exactly one key.
const (
	KeyCompanies     = "companies"
	KeyStudents      = "students"
	KeyRounds        = "rounds"
	KeyRegistrations = "registrations"
	KeyUser          = "user"
)

// Store is the narrow persistence contract: whole-value get and set per key.
// Implementations must return storage failures to the caller rather than
// swallowing them.
type Store interface {
	// Get unmarshals the value stored under key into out. It returns false
	// with a nil error when the key is absent.
	Get(ctx context.Context, key string, out interface{}) (bool, error)

	// Set marshals v and replaces the entire value stored under key.
	Set(ctx context.Context, key string, v interface{}) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying storage handle.
	Close() error
}
