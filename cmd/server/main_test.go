package main

import (
	"bike-route-service/internal/adapters/repositories"
	"bike-route-service/internal/config"
	"context"
	"path/filepath"
	"testing"
)

func TestOpenStationRepositoryCSV(t *testing.T) {
	cfg := config.Default()
	cfg.StationsCSV = "testdata/missing.csv"

	repo, closer, err := openStationRepository(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()

	if _, ok := repo.(*repositories.CSVStationRepository); !ok {
		t.Fatalf("repo = %T, want *repositories.CSVStationRepository", repo)
	}
}

func TestOpenStationRepositorySQLite(t *testing.T) {
	cfg := config.Default()
	cfg.DataSource = config.SourceSQLite
	cfg.DBPath = filepath.Join(t.TempDir(), "app.db")

	repo, closer, err := openStationRepository(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()

	// No schema yet: the adapter reports a data source failure rather than panicking.
	if _, err := repo.ListPoints(context.Background()); err == nil {
		t.Fatal("expected error listing from an uninitialized database")
	}
}

func TestOpenStationRepositoryUnknown(t *testing.T) {
	cfg := config.Default()
	cfg.DataSource = "mongo"

	if _, _, err := openStationRepository(cfg); err == nil {
		t.Fatal("expected error for unknown data source")
	}
}
