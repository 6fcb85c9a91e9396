package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"courtfinder/internal/audit"
	courtshandler "courtfinder/internal/courts/handler"
	"courtfinder/internal/courts/store"
	"courtfinder/internal/platform/config"
	"courtfinder/internal/platform/httpserver"
	"courtfinder/internal/platform/logger"
	"courtfinder/internal/platform/metrics"
	"courtfinder/internal/platform/middleware"
	platformredis "courtfinder/internal/platform/redis"
	"courtfinder/internal/search"
	searchhandler "courtfinder/internal/search/handler"
	searchmetrics "courtfinder/internal/search/metrics"
	"courtfinder/internal/search/postcode"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Venue store: PostgreSQL in production, the seeded in-memory set when
	// no database is configured.
	var courtStore store.Reader
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("ping database", "error", err)
			os.Exit(1)
		}
		courtStore = store.NewPostgres(db)
	} else {
		mem := store.NewInMemoryStore()
		store.SeedCourts(mem)
		courtStore = mem
		log.Warn("no DATABASE_URL configured, serving seeded fixture data")
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}

	var cache postcode.Cache
	if redisClient != nil {
		defer redisClient.Close()
		cache = postcode.NewRedisCache(redisClient.Client, cfg.Search.PostcodeCacheTTL)
	} else {
		cache = postcode.NewMemoryCache(cfg.Search.PostcodeCacheTTL)
	}

	sm := searchmetrics.New()

	resolver, err := postcode.NewResolver([]postcode.Provider{
		postcode.NewAddressFinder(cfg.Search.AddressFinderURL, cfg.Search.ProviderTimeout),
		postcode.NewMapit(cfg.Search.MapitURL, cfg.Search.ProviderTimeout),
	}, postcode.WithCache(cache), postcode.WithLogger(log), postcode.WithMetrics(sm))
	if err != nil {
		log.Error("build postcode resolver", "error", err)
		os.Exit(1)
	}

	searchService, err := search.New(courtStore, resolver, cfg.Search,
		search.WithLogger(log),
		search.WithMetrics(sm),
	)
	if err != nil {
		log.Error("build search service", "error", err)
		os.Exit(1)
	}

	var auditStore audit.Store = audit.NewMemoryStore()
	if db != nil {
		auditStore = audit.NewPostgres(db)
	}
	publisher := audit.NewPublisher(256, log)
	worker := audit.NewWorker(auditStore, publisher.Inbox(), log)

	httpMetrics := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.Latency(httpMetrics))
	router.Use(middleware.Timeout(30 * time.Second))

	searchhandler.New(searchService, log, publisher).Register(router)
	courtshandler.New(courtStore, log).Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httpserver.New(cfg.Addr, router)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("starting courtfinder", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		if err := worker.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
