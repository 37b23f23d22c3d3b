// Package cache holds upstream response bodies in memory and, optionally, in
// a persistent store shared between server instances.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/wordexplorer/internal/domain"
)

// Store is a persistent second tier. Get returns domain.ErrNotFound for a
// missing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, time.Time, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Options sizes the in-memory tier and bounds the age of stored entries.
type Options struct {
	Size     int
	TTL      time.Duration
	StoreTTL time.Duration
}

// Tiered is an expirable LRU in front of an optional Store. Store failures
// are logged and treated as misses.
type Tiered struct {
	mem      *expirable.LRU[string, []byte]
	store    Store
	storeTTL time.Duration
	now      func() time.Time
	log      *slog.Logger
}

// NewTiered creates a Tiered cache. store may be nil.
func NewTiered(opts Options, store Store, logger *slog.Logger) *Tiered {
	return &Tiered{
		mem:      expirable.NewLRU[string, []byte](opts.Size, nil, opts.TTL),
		store:    store,
		storeTTL: opts.StoreTTL,
		now:      time.Now,
		log:      logger.With("adapter", "cache"),
	}
}

// Get looks the key up in memory, then in the store. A store hit younger
// than StoreTTL is promoted into memory.
func (c *Tiered) Get(ctx context.Context, key string) ([]byte, bool) {
	if v, ok := c.mem.Get(key); ok {
		return v, true
	}

	if c.store == nil {
		return nil, false
	}

	v, storedAt, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.log.WarnContext(ctx, "cache store read failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return nil, false
	}

	if c.storeTTL > 0 && c.now().Sub(storedAt) > c.storeTTL {
		return nil, false
	}

	c.mem.Add(key, v)
	return v, true
}

// Set writes the value to both tiers.
func (c *Tiered) Set(ctx context.Context, key string, value []byte) {
	c.mem.Add(key, value)

	if c.store == nil {
		return
	}

	if err := c.store.Put(ctx, key, value); err != nil {
		c.log.WarnContext(ctx, "cache store write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// Len returns the number of in-memory entries.
func (c *Tiered) Len() int {
	return c.mem.Len()
}
