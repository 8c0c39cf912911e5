package rest

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"promatch/infrastructure/di"
	"promatch/interfaces/http/rest/handlers"
	"promatch/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	if rt.container.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Prometheus metrics
	if rt.container.Config.EnableMetrics {
		router.Handle("/metrics", rt.container.Metrics.Handler())
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/network", func(r chi.Router) {
			networkHandler := handlers.NewNetworkHandler(
				rt.container.Network,
				rt.container.Matching,
				rt.container.Graph,
				rt.container.Stats,
				rt.container.Introduction,
				rt.logger,
			)
			r.Post("/initialize", networkHandler.Initialize)
			r.Post("/find-connections", networkHandler.FindConnections)
			r.Get("/stats", networkHandler.NetworkStats)
			r.Get("/mutual-connections", networkHandler.MutualConnections)
			r.Post("/introductions", networkHandler.GenerateIntroduction)

			profileHandler := handlers.NewProfileHandler(rt.container.Store, rt.logger)
			r.Get("/profiles", profileHandler.ListProfiles)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck reports ready once a population is loaded
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !rt.container.Store.Loaded() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"waiting","reason":"network not initialized"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ready","profiles":%d}`, rt.container.Store.Count())
}
