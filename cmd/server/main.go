package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"bizpulse/internal/config"
	"bizpulse/internal/jobs"
	"bizpulse/internal/logging"
	"bizpulse/internal/metrics"
	"bizpulse/internal/posts"
	"bizpulse/internal/sentiment"
	"bizpulse/internal/server"
)

const version = "1.0.0"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	// Topic table and resource catalog
	engine, err := config.BuildEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to build recommendation engine: %v", err)
	}
	slog.Info("recommendation engine ready",
		"topics", engine.Table().Topics(),
		"resources", engine.Catalog().Len(),
		"fallback", engine.Fallback(),
		"match_mode", engine.Mode(),
	)

	seed := cfg.MockSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	clock := clockwork.NewRealClock()
	generator := posts.NewGenerator(seed, clock)

	deps := server.Deps{
		Engine:    engine,
		Analyzer:  sentiment.Default(),
		Generator: generator,
		Version:   version,
	}

	// Resource link checker - only started when an interval is configured
	var links metrics.StatusSource
	if cfg.LinkCheckInterval > 0 {
		checker := jobs.NewLinkChecker(engine.Catalog(), cfg.LinkCheckInterval, clock)
		go checker.Start(ctx)
		deps.Links = checker
		links = checker
	} else {
		log.Println("Resource link checker is disabled. Set LINK_CHECK_INTERVAL to enable.")
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.New(reg, links)
	deps.Gatherer = reg

	srv := server.New(cfg)
	srv.RegisterRoutes(deps)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(10 * time.Second); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
