package cache

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestMemory_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[int](2, 0)

	require.NoError(t, m.Set(ctx, "a", 1))
	require.NoError(t, m.Set(ctx, "b", 2))

	// Touch a so b becomes the eviction candidate.
	_, ok, _ := m.Get(ctx, "a")
	require.True(t, ok)

	require.NoError(t, m.Set(ctx, "c", 3))

	_, ok, _ = m.Get(ctx, "b")
	assert.False(t, ok, "b should have been evicted")

	v, ok, _ := m.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	n, err := m.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMemory_OverwriteKeepsSize(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[string](2, 0)
	require.NoError(t, m.Set(ctx, "k", "one"))
	require.NoError(t, m.Set(ctx, "k", "two"))

	v, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", v)

	n, _ := m.Len(ctx)
	assert.Equal(t, 1, n)
}

func TestMemory_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
	m := NewMemory[int](4, time.Minute, WithClock(clock.Now))

	require.NoError(t, m.Set(ctx, "a", 1))
	clock.Advance(30 * time.Second)
	require.NoError(t, m.Set(ctx, "b", 2))

	_, ok, _ := m.Get(ctx, "a")
	assert.True(t, ok)

	clock.Advance(30 * time.Second)
	_, ok, _ = m.Get(ctx, "a")
	assert.False(t, ok, "a expires exactly at its deadline")

	n, _ := m.Len(ctx)
	assert.Equal(t, 1, n)

	clock.Advance(time.Minute)
	n, _ = m.Len(ctx)
	assert.Equal(t, 0, n)
}

func TestMemory_MinimumSize(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[int](0, 0)
	require.NoError(t, m.Set(ctx, "a", 1))
	require.NoError(t, m.Set(ctx, "b", 2))
	n, _ := m.Len(ctx)
	assert.Equal(t, 1, n)
}

func TestMemory_Purge(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[int](4, 0)
	require.NoError(t, m.Set(ctx, "a", 1))
	m.Purge()
	n, _ := m.Len(ctx)
	assert.Zero(t, n)
	_, ok, _ := m.Get(ctx, "a")
	assert.False(t, ok)
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory[int](8, 0)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := string(rune('a' + i%4))
			_ = m.Set(ctx, key, i)
			_, _, _ = m.Get(ctx, key)
		}()
	}
	wg.Wait()
	n, _ := m.Len(ctx)
	assert.Equal(t, 4, n)
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c Cache[int] = Noop[int]{}
	require.NoError(t, c.Set(ctx, "a", 1))
	_, ok, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

type payload struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

func TestRedis_RoundTrip(t *testing.T) {
	addr := os.Getenv("STUDYBUDDY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STUDYBUDDY_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb, err := DialRedis(ctx, addr, 0)
	require.NoError(t, err)
	defer rdb.Close()

	prefix := "studybuddy-test:" + time.Now().Format("150405.000000") + ":"
	c := NewRedis[payload](rdb, prefix, time.Minute)
	t.Cleanup(func() {
		iter := rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			rdb.Del(ctx, iter.Val())
		}
	})

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	want := payload{Name: "notes.txt", Lines: []string{"a", "b"}}
	require.NoError(t, c.Set(ctx, "doc", want))

	got, ok, err := c.Get(ctx, "doc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	n, err := c.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
