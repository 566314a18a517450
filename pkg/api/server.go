// Package api exposes the SplatVault REST API: streaming PLY ingestion,
// asset metadata and lifecycle, and Prometheus metrics.
package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skallerud/splatvault/pkg/assets"
)

// StartServer starts the HTTP server with all routes configured
func StartServer(store *assets.AssetStore, config ServerConfig) error {
	metrics := NewMetrics()

	server := NewServer(store, config, metrics)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(config.APIKey, metrics))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		r.Post("/assets", metrics.InstrumentHandler("POST", "/api/v1/assets", server.handleUpload))
		r.Get("/assets", metrics.InstrumentHandler("GET", "/api/v1/assets", server.handleListAssets))
		r.Get("/assets/{id}", metrics.InstrumentHandler("GET", "/api/v1/assets/{id}", server.handleGetAsset))
		r.Delete("/assets/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/assets/{id}", server.handleDeleteAsset))

		r.Post("/inspect", metrics.InstrumentHandler("POST", "/api/v1/inspect", server.handleInspect))
		r.Get("/stats", metrics.InstrumentHandler("GET", "/api/v1/stats", server.handleStats))
	})

	// Keep the store gauges fresh in the background.
	go server.startMetricsUpdater(30 * time.Second)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting SplatVault REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))

	return nil
}

// startMetricsUpdater periodically refreshes the store gauges.
func (s *Server) startMetricsUpdater(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		stats, err := s.store.Stats()
		if err != nil {
			continue
		}
		s.metrics.UpdateStoreStats(stats.Assets, stats.TotalBytes)
	}
}
