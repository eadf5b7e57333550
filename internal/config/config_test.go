package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "PORT", "DATA_SOURCE", "STATIONS_CSV", "DB_PATH", "DATABASE_URL",
		"STATIC_DIR", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(k, "")
	}
	// Keep godotenv from picking up a developer's .env.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlDoc := `
port: "9000"
data_source: sqlite
db_path: /var/lib/bikes/app.db
allowed_origins:
  - https://ops.example.com
rate_limit_rps: 5
`
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://127.0.0.1:5173")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9100" {
		t.Errorf("Port = %q, want env override 9100", cfg.Port)
	}
	if cfg.DataSource != SourceSQLite || cfg.DBPath != "/var/lib/bikes/app.db" {
		t.Errorf("data source = %q %q, want sqlite from file", cfg.DataSource, cfg.DBPath)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d, want 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	wantOrigins := []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, wantOrigins) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, wantOrigins)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown source", env: map[string]string{"DATA_SOURCE": "mongo"}},
		{name: "postgres without url", env: map[string]string{"DATA_SOURCE": "postgres"}},
		{name: "bad rps", env: map[string]string{"RATE_LIMIT_RPS": "fast"}},
		{name: "negative rps", env: map[string]string{"RATE_LIMIT_RPS": "-1"}},
		{name: "zero burst", env: map[string]string{"RATE_LIMIT_RPS": "1", "RATE_LIMIT_BURST": "0"}},
		{name: "missing file", env: map[string]string{"CONFIG_FILE": "/nonexistent/config.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Setenv("SEED_PATH", "")
	if got := Get("SEED_PATH", "data/stations.csv"); got != "data/stations.csv" {
		t.Errorf("Get unset = %q, want fallback", got)
	}
	t.Setenv("SEED_PATH", "other.csv")
	if got := Get("SEED_PATH", "data/stations.csv"); got != "other.csv" {
		t.Errorf("Get set = %q, want other.csv", got)
	}
}
