package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when the key has no value (or the value
// has expired). Callers treat it as "state absent", never as a failure.
var ErrKeyNotFound = errors.New("key not found")

// IKeyValueStore is the narrow string key-value contract backing the
// geolocation cache and the submission throttle window.
//
// The store guarantees nothing across keys and nothing across calls;
// read-modify-write sequences must complete inside a single synchronous
// caller function.

type IKeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
