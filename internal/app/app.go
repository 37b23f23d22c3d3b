package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/wordexplorer/internal/adapter/cache"
	"github.com/heartmarshall/wordexplorer/internal/adapter/postgres"
	"github.com/heartmarshall/wordexplorer/internal/adapter/postgres/sourcecache"
	"github.com/heartmarshall/wordexplorer/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordexplorer/internal/adapter/provider/httpx"
	"github.com/heartmarshall/wordexplorer/internal/adapter/provider/ngram"
	"github.com/heartmarshall/wordexplorer/internal/adapter/provider/wikipedia"
	"github.com/heartmarshall/wordexplorer/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/wordexplorer/internal/config"
	"github.com/heartmarshall/wordexplorer/internal/service/lookup"
	"github.com/heartmarshall/wordexplorer/internal/service/wotd"
	"github.com/heartmarshall/wordexplorer/internal/transport/middleware"
	"github.com/heartmarshall/wordexplorer/internal/transport/rest"
)

// warmTimeout bounds one scheduled word-of-the-day lookup.
const warmTimeout = 30 * time.Second

// Run is the application entry point. It loads configuration, wires the
// providers, cache and HTTP transport, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("persistent_cache", cfg.Database.Enabled()),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Left as nil interfaces when no database is configured.
	var (
		store  cache.Store
		pinger interface{ Ping(context.Context) error }
	)
	if cfg.Database.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return err
		}

		repo := sourcecache.New(pool)
		store, pinger = repo, repo
	}

	responses := cache.NewTiered(cache.Options{
		Size:     cfg.Cache.Size,
		TTL:      cfg.Cache.TTL,
		StoreTTL: cfg.Cache.PersistentTTL,
	}, store, logger)

	svc := NewLookupService(cfg.Providers, responses, httpx.NewMetrics(reg), logger)

	var warmer *wotd.Warmer
	if cfg.WordOfDay.WarmEnabled {
		warmer, err = wotd.NewWarmer(svc, cfg.WordOfDay.WarmSchedule, warmTimeout, logger)
		if err != nil {
			return err
		}
		warmer.Start()
	}

	words, err := rest.NewWordHandler(svc, logger)
	if err != nil {
		return err
	}

	health := rest.NewHealthHandler(pinger, BuildVersion())
	mux := rest.NewRouter(words, health, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Except(limiter.Limit(cfg.RateLimit.PerMinute), "/live", "/ready", "/health", "/metrics"),
	)(mux)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if warmer != nil {
		warmer.Stop(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// NewLookupService wires one HTTP client per upstream source, all sharing
// responses and metrics. Both may be nil.
func NewLookupService(cfg config.ProvidersConfig, responses httpx.Cache, metrics *httpx.Metrics, logger *slog.Logger) *lookup.Service {
	client := func(source string) *httpx.Client {
		return httpx.New(source, httpx.Options{
			Timeout:    cfg.Timeout,
			RetryDelay: cfg.RetryDelay,
			UserAgent:  cfg.UserAgent,
			Cache:      responses,
			Metrics:    metrics,
		}, logger)
	}

	query := ngram.Query{
		YearStart: cfg.Ngram.YearStart,
		YearEnd:   cfg.Ngram.YearEnd,
		Corpus:    cfg.Ngram.Corpus,
		Smoothing: cfg.Ngram.Smoothing,
	}

	return lookup.NewService(
		logger,
		wiktionary.NewProviderWithURL(cfg.WiktionaryURL, client("wiktionary"), logger),
		freedict.NewProviderWithURL(cfg.DictionaryURL, client("freedict"), logger),
		wikipedia.NewProviderWithURL(cfg.WikipediaURL, client("wikipedia"), logger),
		ngram.NewProviderWithURL(cfg.NgramURL, query, client("ngram"), logger),
	)
}
