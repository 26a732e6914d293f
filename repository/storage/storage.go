package storage

import (
	"context"
	"errors"
)

// ErrMalformedState marks persisted data that could not be decoded.
// Callers treat it as absent data.
var ErrMalformedState = errors.New("malformed persisted state")

// Storage is the key/value port the stores persist through. Values are
// whole JSON documents; Save overwrites, it never merges.
type Storage interface {
	// Load returns the value stored under key, or nil when there is none.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
