// Package storage provides the small key-value stores used for client-side
// style caching (the last synced daily menu).
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written
var ErrNotFound = errors.New("key not found")

// Store is a byte-oriented key-value store.
// Callers treat it as best effort: both operations may fail.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
