package kv

import (
	"context"
	"errors"
)

// Store is the persistence port used by every stateful component of the
// service. Values are opaque JSON documents keyed by opaque strings; the
// store enforces no schema and offers single-key overwrite semantics only.
// There are no transactions across keys: callers that read-modify-write a
// collection get last-write-wins behavior.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

var (
	// ErrKeyNotFound is returned by Get when the key has never been written
	ErrKeyNotFound = errors.New("kv: key not found")

	// ErrStore is returned on backend failures
	ErrStore = errors.New("kv: storage error")
)
