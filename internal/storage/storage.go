// Package storage is the local persistence adapter: a flat key/value store
// of JSON documents (cart, wishlist, order history, recent searches).
// There is no coordination or transactional guarantee across keys; two
// writers to the same key exhibit last-writer-wins.
package storage

import (
	"context"
	"errors"
)

// Predefined errors for storage operations.
var (
	// ErrKeyNotFound distinguishes "absent key" from a real I/O failure.
	// Callers generally treat an absent key as an empty collection.
	ErrKeyNotFound = errors.New("storage: key not found")
)

// Store defines the key/value operations the facade persists through.
// Values are opaque bytes; every document this service writes is UTF-8 JSON.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
