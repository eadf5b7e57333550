package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported station data sources.
const (
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Config holds all configuration for the route server.
type Config struct {
	Port string `yaml:"port"`

	// Station data
	DataSource  string `yaml:"data_source"`
	StationsCSV string `yaml:"stations_csv"`
	DBPath      string `yaml:"db_path"`
	DatabaseURL string `yaml:"database_url"`

	// HTTP surface
	StaticDir      string   `yaml:"static_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	RateLimitRPS   float64  `yaml:"rate_limit_rps"`
	RateLimitBurst int      `yaml:"rate_limit_burst"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:           "8080",
		DataSource:     SourceCSV,
		StationsCSV:    "data/stations.csv",
		DBPath:         "data/app.db",
		AllowedOrigins: []string{"*"},
		RateLimitBurst: 10,
	}
}

// Load reads .env (if present), then the YAML file named by CONFIG_FILE
// (if set), then environment variables, each layer overriding the last.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("load config: parse %q: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.Port = Get("PORT", c.Port)
	c.DataSource = strings.ToLower(Get("DATA_SOURCE", c.DataSource))
	c.StationsCSV = Get("STATIONS_CSV", c.StationsCSV)
	c.DBPath = Get("DB_PATH", c.DBPath)
	c.DatabaseURL = Get("DATABASE_URL", c.DatabaseURL)
	c.StaticDir = Get("STATIC_DIR", c.StaticDir)

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.AllowedOrigins = origins
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("load config: RATE_LIMIT_RPS %q: %w", v, err)
		}
		c.RateLimitRPS = rps
	}

	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("load config: RATE_LIMIT_BURST %q: %w", v, err)
		}
		c.RateLimitBurst = burst
	}

	return nil
}

// Validate checks that the selected data source has what it needs.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: port is required")
	}

	switch c.DataSource {
	case SourceCSV:
		if strings.TrimSpace(c.StationsCSV) == "" {
			return errors.New("config: STATIONS_CSV is required for the csv data source")
		}
	case SourceSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return errors.New("config: DB_PATH is required for the sqlite data source")
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("config: DATABASE_URL is required for the postgres data source")
		}
	default:
		return fmt.Errorf("config: unknown data source %q (want csv, sqlite or postgres)", c.DataSource)
	}

	if c.RateLimitRPS < 0 {
		return errors.New("config: RATE_LIMIT_RPS must be >= 0")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return errors.New("config: RATE_LIMIT_BURST must be >= 1 when rate limiting is enabled")
	}

	return nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
