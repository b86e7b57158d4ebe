package securestore

import (
	"context"
	"errors"
)

// KeyUserID is the single persisted session key, written at login and cleared at logout
const KeyUserID = "user_id"

// ErrNotFound is returned by Get when no value is stored under the key
var ErrNotFound = errors.New("secure value not found")

// Store defines the interface for persisted key-value storage
type Store interface {
	// Get returns the value stored under key or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources
	Close() error
}
