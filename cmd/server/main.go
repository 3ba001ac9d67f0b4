// Package main runs the fee-distribution analysis service:
// - HTTP API for on-demand token analysis and snapshot history
// - WebSocket stream of completed analyses
// - Prometheus metrics, health and status endpoints
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"creator-fee-scan/internal/api"
	"creator-fee-scan/internal/cache"
	"creator-fee-scan/internal/config"
	"creator-fee-scan/internal/launchpad"
	"creator-fee-scan/internal/storage"
	chstore "creator-fee-scan/internal/storage/clickhouse"
	"creator-fee-scan/internal/storage/memory"
	"creator-fee-scan/internal/storage/migrations"
	pgstore "creator-fee-scan/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Flags override env-derived config.
	listenAddr := flag.String("listen-addr", cfg.Server.ListenAddr, "HTTP listen address")
	apiBase := flag.String("api-base", cfg.Upstream.BaseURL, "Launchpad API base URL")
	postgresDSN := flag.String("postgres-dsn", cfg.Storage.PostgresDSN, "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", cfg.Storage.ClickhouseDSN, "ClickHouse connection string")
	useMemory := flag.Bool("use-memory", cfg.Storage.UseMemory, "Use in-memory storage instead of PostgreSQL")
	redisAddr := flag.String("redis-addr", cfg.Cache.RedisAddr, "Redis address for the analysis cache (empty disables caching)")
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	if *apiBase == "" {
		logger.Fatal("--api-base is required")
	}
	if !*useMemory && *postgresDSN == "" {
		logger.Fatal("--postgres-dsn is required (use --use-memory for in-memory storage)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, archive, cleanup, err := createStores(ctx, *postgresDSN, *clickhouseDSN, *useMemory)
	if err != nil {
		logger.Fatalf("Failed to create stores: %v", err)
	}
	defer cleanup()

	var analysisCache *cache.AnalysisCache
	if *redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     *redisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		analysisCache = cache.NewAnalysisCache(rdb, cfg.Cache.TTL)
		logger.Printf("Analysis cache enabled (redis %s, ttl %v)", *redisAddr, cfg.Cache.TTL)
	}

	fetcher := launchpad.NewClient(*apiBase,
		launchpad.WithTimeout(cfg.Upstream.Timeout),
	)

	hub := api.NewHub(log.New(os.Stdout, "[stream] ", log.LstdFlags))
	defer hub.Close()

	server := api.NewServer(api.ServerOptions{
		Fetcher:        fetcher,
		Store:          store,
		Archive:        archive,
		Cache:          analysisCache,
		RateLimiter:    api.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		Hub:            hub,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	})

	httpServer := &http.Server{
		Addr:         *listenAddr,
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	done := make(chan struct{})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, initiating graceful shutdown...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Printf("Shutdown error: %v", err)
		}
		cancel()

		select {
		case sig := <-sigCh:
			logger.Printf("Received second signal %v, forcing immediate shutdown", sig)
			os.Exit(1)
		case <-time.After(30 * time.Second):
			logger.Println("Graceful shutdown timed out after 30s, forcing exit")
			os.Exit(1)
		case <-done:
		}
	}()

	logger.Printf("Listening on %s (upstream %s)", *listenAddr, *apiBase)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("HTTP server error: %v", err)
	}
	close(done)

	logger.Println("Shutdown complete")
}

// createStores builds the snapshot store and claim archive. ClickHouse is
// optional; without a DSN the archive is nil and archival is skipped.
func createStores(ctx context.Context, postgresDSN, clickhouseDSN string, useMemory bool) (storage.AnalysisStore, storage.ClaimEventArchive, func(), error) {
	if useMemory {
		return memory.NewAnalysisStore(), nil, func() {}, nil
	}

	pool, err := pgstore.NewPool(ctx, postgresDSN)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("run postgres migrations: %w", err)
	}

	if clickhouseDSN == "" {
		return pgstore.NewAnalysisStore(pool), nil, func() { pool.Close() }, nil
	}

	chConn, err := chstore.NewConn(ctx, clickhouseDSN)
	if err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("connect to clickhouse: %w", err)
	}
	if err := migrations.RunClickhouseMigrations(ctx, chConn); err != nil {
		chConn.Close()
		pool.Close()
		return nil, nil, nil, fmt.Errorf("run clickhouse migrations: %w", err)
	}

	cleanup := func() {
		chConn.Close()
		pool.Close()
	}
	return pgstore.NewAnalysisStore(pool), chstore.NewClaimEventArchive(chConn), cleanup, nil
}
