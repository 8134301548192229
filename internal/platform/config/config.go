// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (sources, cache, DB) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the OWH API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational database (PostgreSQL) — secondary catalog source and the
	// persisted store for rental requests and contact submissions.
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Key-value cache (Redis). Optional: when unset, the resolution cache
	// runs in-process only.
	RedisURL string `env:"REDIS_URL"`

	// Headless CMS source
	CMSBaseURL string        `env:"CMS_BASE_URL" envDefault:"https://cms.owh.md/wp-json/owh/v1"`
	CMSTimeout time.Duration `env:"CMS_TIMEOUT"  envDefault:"10s"`
	CMSRetries int           `env:"CMS_RETRIES"  envDefault:"3"`

	// Spreadsheet source (published catalog sheet). The sheet id is optional:
	// when unset, the spreadsheet adapter degrades to empty results and the
	// fallback chain carries the read path.
	SheetsBaseURL string        `env:"SHEETS_BASE_URL"       envDefault:"https://docs.google.com"`
	SheetsID      string        `env:"SHEETS_SPREADSHEET_ID"`
	SheetsTimeout time.Duration `env:"SHEETS_TIMEOUT"        envDefault:"15s"`
	SheetsRetries int           `env:"SHEETS_RETRIES"        envDefault:"2"`

	// Resolution-cache staleness windows. "Fresh" is served without a
	// refetch; "Lifetime" evicts the snapshot entirely. Equipment
	// availability refreshes at half the catalog rate; site settings and
	// menus change rarely and get 4x the catalog windows.
	CatalogFresh      time.Duration `env:"CACHE_CATALOG_FRESH"      envDefault:"2m"`
	CatalogLifetime   time.Duration `env:"CACHE_CATALOG_LIFETIME"   envDefault:"5m"`
	EquipmentFresh    time.Duration `env:"CACHE_EQUIPMENT_FRESH"    envDefault:"1m"`
	EquipmentLifetime time.Duration `env:"CACHE_EQUIPMENT_LIFETIME" envDefault:"2m30s"`
	SiteFresh         time.Duration `env:"CACHE_SITE_FRESH"         envDefault:"8m"`
	SiteLifetime      time.Duration `env:"CACHE_SITE_LIFETIME"      envDefault:"20m"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
