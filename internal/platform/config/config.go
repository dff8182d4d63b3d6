// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct. A local '.env' file, when present, is loaded first with 'joho/godotenv'
so development setups do not need exported variables.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Progress Backends

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// # Configuration Schema

// Config holds all runtime configuration for the API server and the catalog CLI.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Catalogue source: one JSON file per title.
	CatalogDataDir      string   `env:"CATALOG_DATA_DIR"      envDefault:"./data/manga"`
	CatalogFallbackDirs []string `env:"CATALOG_FALLBACK_DIRS" envDefault:"dist/data,server/data" envSeparator:","`
	CatalogLoadWorkers  int      `env:"CATALOG_LOAD_WORKERS"  envDefault:"8"`

	// Reading progress storage. An empty MigrationPath uses the embedded migrations.
	ProgressBackend  string `env:"PROGRESS_BACKEND"   envDefault:"memory"`
	SQLitePath       string `env:"SQLITE_PATH"        envDefault:"./data/progress.db"`
	DatabaseURL      string `env:"DATABASE_URL"`
	MigrationPath    string `env:"MIGRATION_PATH"`
	RedisURL         string `env:"REDIS_URL"`
	RedisProgressKey string `env:"REDIS_PROGRESS_KEY" envDefault:"mangaread:reading_progress"`

	// Cross-Origin Resource Sharing; "*" allows every origin.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Per-client token bucket.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"150"`

	// PublicBaseURL overrides the scheme+host used in sitemap.xml.
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

// # Configuration Loading

// Load reads an optional .env file, then parses environment variables into a [Config].
func Load() (*Config, error) {

	// A missing .env is the normal production case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	return Parse(os.Environ())
}

// Parse builds a [Config] from KEY=VALUE pairs without touching the process
// environment. Tests use it directly.
func Parse(environ []string) (*Config, error) {
	cfg := &Config{}

	options := env.Options{Environment: env.ToMap(environ)}
	if err := env.ParseWithOptions(cfg, options); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces cross-field rules that struct tags cannot express.
func (c *Config) validate() error {
	c.ProgressBackend = strings.ToLower(strings.TrimSpace(c.ProgressBackend))

	switch c.ProgressBackend {
	case BackendMemory:
	case BackendSQLite:
		if c.SQLitePath == "" {
			return errors.New("config: SQLITE_PATH is required for the sqlite progress backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres progress backend")
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("config: REDIS_URL is required for the redis progress backend")
		}
	default:
		return fmt.Errorf("config: unknown PROGRESS_BACKEND %q", c.ProgressBackend)
	}

	if c.CatalogLoadWorkers < 1 {
		c.CatalogLoadWorkers = 1
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return errors.New("config: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return nil
}

// CatalogDirCandidates returns the data directories to probe, in order.
func (c *Config) CatalogDirCandidates() []string {
	candidates := make([]string, 0, 1+len(c.CatalogFallbackDirs))
	candidates = append(candidates, c.CatalogDataDir)
	for _, dir := range c.CatalogFallbackDirs {
		if dir = strings.TrimSpace(dir); dir != "" {
			candidates = append(candidates, dir)
		}
	}
	return candidates
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
