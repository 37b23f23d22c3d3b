package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueKey returns a cache key under prefix that no other test uses.
func UniqueKey(prefix string) string {
	return prefix + ":" + uuid.New().String()[:8]
}

// SeedSourceEntry inserts a source_cache row with an explicit stored_at so
// tests can create entries that are already stale.
func SeedSourceEntry(t *testing.T, pool *pgxpool.Pool, key string, payload []byte, storedAt time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO source_cache (key, payload, stored_at) VALUES ($1, $2, $3)`,
		key, payload, storedAt.UTC(),
	)
	if err != nil {
		t.Fatalf("seed source_cache %q: %v", key, err)
	}
}
