// Package cache provides bounded key/value caches for derived document
// data.
package cache

import "context"

// Cache stores values by key. A miss is reported by ok == false with a nil
// error; errors are reserved for backend failures.
type Cache[V any] interface {
	Get(ctx context.Context, key string) (v V, ok bool, err error)
	Set(ctx context.Context, key string, v V) error
	Len(ctx context.Context) (int, error)
}

// Noop never stores anything.
type Noop[V any] struct{}

func (Noop[V]) Get(context.Context, string) (V, bool, error) {
	var zero V
	return zero, false, nil
}

func (Noop[V]) Set(context.Context, string, V) error { return nil }

func (Noop[V]) Len(context.Context) (int, error) { return 0, nil }
