package store

import (
	"context"
	"errors"
	"time"
)

// ErrKeyMissing is the backend-level absent-key signal; the store translates
// it into a typed not-found error per slot.
var ErrKeyMissing = errors.New("key missing")

// KV is the minimal key-value surface the booking store needs from a
// backend. Redis implements it in production; MemoryKV backs unit tests.
type KV interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// SetNX writes only when the key is absent and reports whether it wrote.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, key string) error
	RPush(ctx context.Context, key string, value []byte) error
	LRange(ctx context.Context, key string) ([][]byte, error)
}
