package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordexplorer/internal/domain"
)

type mockStore struct {
	GetFunc func(ctx context.Context, key string) ([]byte, time.Time, error)
	PutFunc func(ctx context.Context, key string, value []byte) error
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, time.Time, error) {
	return m.GetFunc(ctx, key)
}

func (m *mockStore) Put(ctx context.Context, key string, value []byte) error {
	return m.PutFunc(ctx, key, value)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTiered_MemoryOnly(t *testing.T) {
	t.Parallel()

	c := NewTiered(Options{Size: 2, TTL: time.Minute}, nil, newTestLogger())
	ctx := context.Background()

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)

	c.Set(ctx, "a", []byte("1"))
	v, ok := c.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	c.Set(ctx, "b", []byte("2"))
	c.Set(ctx, "c", []byte("3"))
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get(ctx, "a")
	assert.False(t, ok, "oldest entry should be evicted")
}

func TestTiered_StoreHitPromotedToMemory(t *testing.T) {
	t.Parallel()

	calls := 0
	store := &mockStore{
		GetFunc: func(_ context.Context, key string) ([]byte, time.Time, error) {
			calls++
			return []byte("stored"), time.Now().Add(-time.Hour), nil
		},
	}

	c := NewTiered(Options{Size: 8, TTL: time.Minute, StoreTTL: 24 * time.Hour}, store, newTestLogger())
	ctx := context.Background()

	for range 2 {
		v, ok := c.Get(ctx, "k")
		require.True(t, ok)
		assert.Equal(t, []byte("stored"), v)
	}
	assert.Equal(t, 1, calls)
}

func TestTiered_StaleStoreEntryIsMiss(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		GetFunc: func(_ context.Context, _ string) ([]byte, time.Time, error) {
			return []byte("old"), time.Now().Add(-48 * time.Hour), nil
		},
	}

	c := NewTiered(Options{Size: 8, TTL: time.Minute, StoreTTL: 24 * time.Hour}, store, newTestLogger())
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
}

func TestTiered_StoreErrorsAreMisses(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		GetFunc: func(_ context.Context, _ string) ([]byte, time.Time, error) {
			return nil, time.Time{}, errors.New("connection refused")
		},
		PutFunc: func(_ context.Context, _ string, _ []byte) error {
			return errors.New("connection refused")
		},
	}

	c := NewTiered(Options{Size: 8, TTL: time.Minute}, store, newTestLogger())
	ctx := context.Background()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	c.Set(ctx, "k", []byte("v"))
	v, ok := c.Get(ctx, "k")
	require.True(t, ok, "memory tier still serves after a store write failure")
	assert.Equal(t, []byte("v"), v)
}

func TestTiered_StoreNotFound(t *testing.T) {
	t.Parallel()

	var put []byte
	store := &mockStore{
		GetFunc: func(_ context.Context, key string) ([]byte, time.Time, error) {
			return nil, time.Time{}, domain.ErrNotFound
		},
		PutFunc: func(_ context.Context, _ string, value []byte) error {
			put = value
			return nil
		},
	}

	c := NewTiered(Options{Size: 8, TTL: time.Minute}, store, newTestLogger())
	ctx := context.Background()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	c.Set(ctx, "k", []byte("fresh"))
	assert.Equal(t, []byte("fresh"), put)
}
