// opphub-match-service
//
// Discovery core for the opportunity platform: serves the filtered catalog
// and per-user recommendations over HTTP. Catalog data comes from
// PostgreSQL (or a YAML fixture file in development), is held as an
// in-memory snapshot refreshed on a cron interval, and recommendation
// lists are cached in Redis when configured.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opphub/match-service/internal/api"
	"opphub/match-service/internal/cache"
	"opphub/match-service/internal/catalog"
	"opphub/match-service/internal/config"
	"opphub/match-service/internal/db"
	"opphub/match-service/internal/store"
)

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[match-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Catalog source ───────────────────────────────────────────────────────
	var (
		loader   catalog.Loader
		profiles api.ProfileStore
	)
	if cfg.DatabaseURL != "" {
		log.Println("[match-service] Connecting to PostgreSQL…")
		pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[match-service] PostgreSQL: %v", err)
		}
		defer pool.Close()
		log.Println("[match-service] PostgreSQL connected ✓")

		st := store.New(pool)
		loader = st
		profiles = st
	} else {
		log.Printf("[match-service] DATABASE_URL not set — serving fixtures from %s", cfg.CatalogFixtures)
		loader = &catalog.FixtureLoader{Path: cfg.CatalogFixtures}
	}

	// ── Redis (optional) ─────────────────────────────────────────────────────
	var rec *cache.Recommendations
	if cfg.RedisURL != "" {
		log.Println("[match-service] Connecting to Redis…")
		rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("[match-service] Redis: %v", err)
		}
		defer rdb.Close()
		log.Println("[match-service] Redis connected ✓")
		rec = cache.New(rdb, time.Duration(cfg.CacheTTLMinutes)*time.Minute)
	} else {
		log.Println("[match-service] REDIS_URL not set — recommendation cache disabled")
	}

	// ── Catalog snapshot + refresh cron ─────────────────────────────────────
	cat := catalog.New(loader, cfg.RefreshHours)
	if err := cat.Start(ctx); err != nil {
		log.Fatalf("[match-service] Catalog: %v", err)
	}
	defer cat.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.NewHandler(cat, profiles, rec).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: mux,
	}

	go func() {
		log.Printf("[match-service] Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[match-service] Fatal: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("[match-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[match-service] Shutdown error: %v", err)
	}
	log.Println("[match-service] Bye")
}
