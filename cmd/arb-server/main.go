package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"sports-arb-api/internal/config"
	"sports-arb-api/internal/feed"
	"sports-arb-api/internal/parlay"
	"sports-arb-api/internal/server"
	"sports-arb-api/internal/store"
)

func main() {
	cfg := config.Load()

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Opening database: %v", err)
	}
	defer db.Close()

	// Odds feed is optional: without it the calculator and persistence
	// endpoints still serve, the opportunity list returns 503.
	var source feed.Source
	var sgpQuoter parlay.CorrelatedQuoter
	if cfg.FeedURL != "" {
		client := feed.NewClient(cfg.FeedURL, cfg.FeedAPIKey, cfg.FeedTimeout)
		sgpQuoter = client

		redisClient := connectRedis(cfg.RedisURL)
		if redisClient != nil {
			defer redisClient.Close()
		}
		source = feed.NewCachedSource(client, redisClient, cfg.CacheTTL)
	} else {
		log.Println("FEED_URL not set, opportunity feed disabled")
	}

	srv := server.New(db, source, sgpQuoter, cfg.FreeRowLimit)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(cfg.CORSOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Listening on :%s (db=%s feed=%s free_rows=%d)",
			cfg.Port, cfg.DBPath, feedStatus(cfg.FeedURL), cfg.FreeRowLimit)
		serverErrors <- httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server error: %v", err)

	case sig := <-shutdown:
		log.Printf("Shutdown signal received: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
			httpServer.Close()
		}
	}

	log.Println("Server stopped")
}

// connectRedis returns nil when redis is unconfigured or unreachable; the
// cache layer degrades to a pass-through in that case.
func connectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Redis disabled: %v", err)
		return nil
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis disabled: %v", err)
		client.Close()
		return nil
	}

	log.Println("Redis connected")
	return client
}

func feedStatus(feedURL string) string {
	if feedURL == "" {
		return "disabled"
	}
	return feedURL
}
