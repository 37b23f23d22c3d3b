// Package sourcecache persists raw upstream responses in PostgreSQL so that
// repeat lookups survive restarts without hitting the public APIs again.
package sourcecache

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordexplorer/internal/adapter/postgres"
)

const (
	table  = "source_cache"
	entity = "source_cache"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo stores cached payloads keyed by request URL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new source cache repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the payload stored under key and the time it was written.
// Returns domain.ErrNotFound if nothing is stored.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, time.Time, error) {
	query, args, err := psql.
		Select("payload", "stored_at").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("sourcecache: build get: %w", err)
	}

	var (
		payload  []byte
		storedAt time.Time
	)
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&payload, &storedAt); err != nil {
		return nil, time.Time{}, postgres.MapError(err, entity, key)
	}

	return payload, storedAt, nil
}

// Put stores payload under key, replacing any previous value and refreshing
// its timestamp.
func (r *Repo) Put(ctx context.Context, key string, payload []byte) error {
	query, args, err := psql.
		Insert(table).
		Columns("key", "payload", "stored_at").
		Values(key, payload, sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, stored_at = EXCLUDED.stored_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("sourcecache: build put: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, key)
	}

	return nil
}

// DeleteOlderThan removes every entry stored before cutoff and returns the
// number of rows deleted.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := psql.
		Delete(table).
		Where(sq.Lt{"stored_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("sourcecache: build delete: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, "*")
	}

	return tag.RowsAffected(), nil
}

// Count returns the number of stored entries.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	query, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("sourcecache: build count: %w", err)
	}

	var n int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, entity, "*")
	}

	return n, nil
}

// Ping reports whether the database is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
