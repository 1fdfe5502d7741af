// Package kv is the durability boundary for the whole application: a small
// key-value contract every store routes through, plus JSON codec helpers
// that centralize the read-side failure swallowing. Concrete engines are
// the in-memory map (tests) and the sqlite driver under drivers/sqlite.
package kv

import "errors"

// ErrNotFound reports a key with no stored value.
var ErrNotFound = errors.New("kv: not found")

// Store is a synchronous key-value engine. Implementations must be safe
// for use from a single caller at a time; the application is event-driven
// and never mutates concurrently.
type Store interface {
	// Get returns the raw value for key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set writes the value for key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases any underlying resources.
	Close() error
}
