package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bizpulse/internal/handlers"
	"bizpulse/internal/handlers/api"
	"bizpulse/internal/metrics"
	"bizpulse/internal/posts"
	"bizpulse/internal/recommend"
)

// Deps are the components the routes serve.
type Deps struct {
	Engine    *recommend.Engine
	Analyzer  api.Analyzer
	Generator *posts.Generator
	Links     api.LinkStatuses // nil when the link checker is disabled
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	Version   string
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(d Deps) {
	// Initialize handlers
	indexHandler := handlers.NewIndexHandler("Small Business Sentiment Intelligence API", s.Cfg.BaseURL)
	probeHandler := handlers.NewProbeHandler(d.Engine.Catalog())
	analyzeHandler := api.NewAnalyzeHandler(d.Engine, d.Analyzer, d.Metrics)
	postsHandler := api.NewPostsHandler(d.Generator, d.Analyzer, s.Cfg.PostsFile, s.Cfg.StatisticsSample)
	catalogHandler := api.NewCatalogHandler(d.Engine, d.Links)
	healthHandler := api.NewHealthHandler(d.Version, nil)

	// Landing page and probes
	s.App.Get("/", indexHandler.Index)
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	if d.Gatherer != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Post("/analyze", analyzeHandler.Analyze)
	apiGroup.Post("/recommend", analyzeHandler.Recommend)
	apiGroup.Get("/posts", postsHandler.List)
	apiGroup.Get("/statistics", postsHandler.Statistics)
	apiGroup.Get("/health", healthHandler.Health)
	apiGroup.Get("/topics", catalogHandler.Topics)
	apiGroup.Get("/resources/health", catalogHandler.LinkHealth)
	apiGroup.Get("/resources/:topic", catalogHandler.Resources)
}
