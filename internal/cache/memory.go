package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// Memory is an in-process LRU cache with a fixed capacity and per-entry
// expiry. It is safe for concurrent use.
type Memory[V any] struct {
	mu    sync.Mutex
	size  int
	ttl   time.Duration
	now   func() time.Time
	order *list.List // front = most recently used
	items map[string]*list.Element
}

type memoryEntry[V any] struct {
	key     string
	value   V
	expires time.Time
}

// MemoryOption configures a Memory cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	now func() time.Time
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(o *memoryOptions) { o.now = now }
}

// NewMemory creates a cache holding at most size entries. A ttl of 0
// disables expiry. size below 1 is treated as 1.
func NewMemory[V any](size int, ttl time.Duration, opts ...MemoryOption) *Memory[V] {
	o := memoryOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if size < 1 {
		size = 1
	}
	return &Memory[V]{
		size:  size,
		ttl:   ttl,
		now:   o.now,
		order: list.New(),
		items: make(map[string]*list.Element, size),
	}
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	el, ok := m.items[key]
	if !ok {
		return zero, false, nil
	}
	e := el.Value.(*memoryEntry[V])
	if m.expired(e) {
		m.remove(el)
		return zero, false, nil
	}
	m.order.MoveToFront(el)
	return e.value, true, nil
}

func (m *Memory[V]) Set(_ context.Context, key string, v V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expires time.Time
	if m.ttl > 0 {
		expires = m.now().Add(m.ttl)
	}

	if el, ok := m.items[key]; ok {
		e := el.Value.(*memoryEntry[V])
		e.value = v
		e.expires = expires
		m.order.MoveToFront(el)
		return nil
	}

	m.items[key] = m.order.PushFront(&memoryEntry[V]{key: key, value: v, expires: expires})
	for m.order.Len() > m.size {
		m.remove(m.order.Back())
	}
	return nil
}

// Len returns the number of live entries. Expired entries are purged
// first.
func (m *Memory[V]) Len(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for el := m.order.Back(); el != nil; {
		prev := el.Prev()
		if m.expired(el.Value.(*memoryEntry[V])) {
			m.remove(el)
		}
		el = prev
	}
	return m.order.Len(), nil
}

// Purge drops every entry.
func (m *Memory[V]) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order.Init()
	clear(m.items)
}

func (m *Memory[V]) expired(e *memoryEntry[V]) bool {
	return !e.expires.IsZero() && !m.now().Before(e.expires)
}

func (m *Memory[V]) remove(el *list.Element) {
	e := m.order.Remove(el).(*memoryEntry[V])
	delete(m.items, e.key)
}
