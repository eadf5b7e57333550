package api

import (
	"bike-route-service/internal/adapters/distance"
	"bike-route-service/internal/api/handlers"
	"bike-route-service/internal/metrics"
	"bike-route-service/internal/ports"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// Options tune the HTTP surface around the route handlers.
type Options struct {
	AllowedOrigins []string
	StaticDir      string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.StationRepository, dist ports.DistanceFunc, opts Options) http.Handler {
	if dist == nil {
		dist = distance.Haversine
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	stationHandler := &handlers.StationHandler{Repo: repo}
	routeHandler := &handlers.RouteHandler{
		Repo:     repo,
		Distance: dist,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", handlers.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		if opts.RateLimitRPS > 0 {
			burst := opts.RateLimitBurst
			if burst < 1 {
				burst = 1
			}
			r.Use(rateLimitMiddleware(rate.NewLimiter(rate.Limit(opts.RateLimitRPS), burst)))
		}

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			handlers.WriteError(w, r, http.StatusNotFound, "not found")
		})

		r.Get("/stations", stationHandler.List)
		r.Get("/get-route", routeHandler.Optimal)
	})

	// Static frontend (index.html at "/") when configured.
	if dir := strings.TrimSpace(opts.StaticDir); dir != "" {
		r.Handle("/*", http.FileServer(http.Dir(dir)))
	}

	return r
}
