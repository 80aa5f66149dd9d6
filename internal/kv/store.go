// Package kv abstracts the string-keyed, JSON-valued persistence substrate
// the notification and wishlist stores serialize their collections to.
// Read-after-write within one process is guaranteed by both implementations;
// cross-process staleness is a documented limitation of the design.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key holds no value.
var ErrKeyNotFound = errors.New("kv: key not found")

// Store is a minimal durable key-value interface.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
