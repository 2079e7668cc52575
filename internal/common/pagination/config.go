// Package pagination provides offset-based pagination primitives shared by the
// handler and usecase layers: parameter normalization, offset arithmetic,
// and the metadata block rendered alongside every page.
package pagination

import (
	"article-hub/pkg/config"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage     int // Default page number (1)
	DefaultPageSize int // Default items per page (10)
	MaxPageSize     int // Upper bound; larger requests are clamped (50)
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, pageSize=10, max=50
func DefaultConfig() Config {
	return Config{
		DefaultPage:     1,
		DefaultPageSize: 10,
		MaxPageSize:     50,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE_SIZE: Default items per page
//   - PAGINATION_MAX_PAGE_SIZE: Maximum items per page
//
// Values that are not positive, or a default larger than the maximum, fall back to DefaultConfig().
func LoadFromEnv() Config {
	def := DefaultConfig()
	cfg := Config{
		DefaultPage:     def.DefaultPage,
		DefaultPageSize: config.GetEnvInt("PAGINATION_DEFAULT_PAGE_SIZE", def.DefaultPageSize),
		MaxPageSize:     config.GetEnvInt("PAGINATION_MAX_PAGE_SIZE", def.MaxPageSize),
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = def.MaxPageSize
	}
	if cfg.DefaultPageSize <= 0 || cfg.DefaultPageSize > cfg.MaxPageSize {
		cfg.DefaultPageSize = min(def.DefaultPageSize, cfg.MaxPageSize)
	}
	return cfg
}
