package wotd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/wordexplorer/internal/domain"
)

type pageLoader interface {
	Lookup(ctx context.Context, term string) (*domain.WordPage, error)
}

// Warmer looks up the word of the day on a cron schedule so the first
// visitor of the day is served from cache.
type Warmer struct {
	loader  pageLoader
	cron    *cron.Cron
	timeout time.Duration
	now     func() time.Time
	log     *slog.Logger
}

// NewWarmer creates a Warmer running on schedule (standard 5-field cron
// syntax or a descriptor such as @daily). timeout bounds each warm-up.
func NewWarmer(loader pageLoader, schedule string, timeout time.Duration, logger *slog.Logger) (*Warmer, error) {
	w := &Warmer{
		loader:  loader,
		cron:    cron.New(),
		timeout: timeout,
		now:     time.Now,
		log:     logger.With("service", "wotd"),
	}

	if _, err := w.cron.AddFunc(schedule, func() { _ = w.Warm(context.Background()) }); err != nil {
		return nil, fmt.Errorf("wotd: schedule %q: %w", schedule, err)
	}

	return w, nil
}

// Start runs the scheduler in its own goroutine.
func (w *Warmer) Start() {
	w.cron.Start()
}

// Stop halts the scheduler and waits for a running warm-up to finish or ctx
// to be done.
func (w *Warmer) Stop(ctx context.Context) {
	done := w.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// Warm looks up today's word once. Failures are logged and returned.
func (w *Warmer) Warm(ctx context.Context) error {
	word := For(w.now()).Word

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	if _, err := w.loader.Lookup(ctx, word); err != nil {
		w.log.WarnContext(ctx, "word of the day warm-up failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("wotd: warm %q: %w", word, err)
	}

	w.log.InfoContext(ctx, "word of the day warmed",
		slog.String("word", word),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}
