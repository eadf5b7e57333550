package main

import (
	"bike-route-service/internal/adapters/distance"
	"bike-route-service/internal/adapters/repositories"
	"bike-route-service/internal/api"
	"bike-route-service/internal/config"
	"bike-route-service/internal/metrics"
	"bike-route-service/internal/platform/db"
	"bike-route-service/internal/ports"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// main is the application composition root.
// It wires the configured station source behind the repository port and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	repo, closer, err := openStationRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	metrics.RegisterDefault()

	router := api.NewRouter(repo, distance.Haversine, api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	log.Printf("Server listening addr=:%s data_source=%s", cfg.Port, cfg.DataSource)
	log.Println("API endpoints:")
	log.Println("  GET /api/stations")
	log.Println("  GET /api/get-route")
	log.Println("  GET /health")
	log.Println("  GET /metrics")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStationRepository selects the station adapter for cfg.DataSource.
// The returned closer releases any database handle.
func openStationRepository(cfg *config.Config) (ports.StationRepository, io.Closer, error) {
	switch cfg.DataSource {
	case config.SourceCSV:
		return repositories.NewCSVStationRepository(cfg.StationsCSV), nopCloser{}, nil

	case config.SourceSQLite:
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLStationRepository(conn, "sqlite:"+cfg.DBPath), conn, nil

	case config.SourcePostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLStationRepository(conn, "postgres"), conn, nil

	default:
		return nil, nil, fmt.Errorf("open station repository: unknown data source %q", cfg.DataSource)
	}
}
