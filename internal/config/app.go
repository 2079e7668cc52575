// Package config assembles the application configuration from an optional
// YAML file and environment variables. Environment variables win.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"article-hub/internal/infra/drafter"
	env "article-hub/pkg/config"
)

// AppConfig is the root configuration of the API server.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Generate GenerateConfig `yaml:"generate"`
	Drafter  drafter.Config `yaml:"drafter"`
	Log      LogConfig      `yaml:"log"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`

	// TrustProxyHeaders makes client IP extraction honor X-Forwarded-For and X-Real-IP.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

// GenerateConfig is the token bucket guarding POST /articles/generate.
type GenerateConfig struct {
	RatePerSec float64 `yaml:"rate_per_sec"`
	Burst      int     `yaml:"burst"`
}

// LogConfig selects the log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `yaml:"level"`
}

// TracingConfig toggles the OpenTelemetry tracer provider.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Default returns the configuration used when nothing is set.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    90 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Generate: GenerateConfig{RatePerSec: 1, Burst: 5},
		Drafter:  drafter.DefaultConfig(),
		Log:      LogConfig{Level: "info"},
		Tracing:  TracingConfig{Enabled: true, ServiceName: "article-hub", SampleRatio: 1.0},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if path
// is not empty), then environment variables. The result is validated.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path comes from CONFIG_FILE, set by the operator
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func applyEnv(cfg *AppConfig) {
	cfg.Server.Addr = env.GetEnvString("HTTP_ADDR", cfg.Server.Addr)
	cfg.Server.ReadTimeout = env.GetEnvDuration("HTTP_READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = env.GetEnvDuration("HTTP_WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	cfg.Server.ShutdownTimeout = env.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)
	cfg.Server.TrustProxyHeaders = env.GetEnvBool("HTTP_TRUST_PROXY_HEADERS", cfg.Server.TrustProxyHeaders)

	cfg.Generate.RatePerSec = env.GetEnvFloat("GENERATE_RATE_PER_SEC", cfg.Generate.RatePerSec)
	cfg.Generate.Burst = env.GetEnvInt("GENERATE_BURST", cfg.Generate.Burst)

	cfg.Drafter.Provider = env.GetEnvString("DRAFTER_PROVIDER", cfg.Drafter.Provider)
	cfg.Drafter.Timeout = env.GetEnvDuration("DRAFTER_TIMEOUT", cfg.Drafter.Timeout)
	cfg.Drafter.MaxTokens = env.GetEnvInt("DRAFTER_MAX_TOKENS", cfg.Drafter.MaxTokens)
	cfg.Drafter.OpenAI.APIKey = env.GetEnvString("OPENAI_API_KEY", cfg.Drafter.OpenAI.APIKey)
	cfg.Drafter.OpenAI.BaseURL = env.GetEnvString("OPENAI_BASE_URL", cfg.Drafter.OpenAI.BaseURL)
	cfg.Drafter.Claude.APIKey = env.GetEnvString("ANTHROPIC_API_KEY", cfg.Drafter.Claude.APIKey)
	cfg.Drafter.Claude.BaseURL = env.GetEnvString("ANTHROPIC_BASE_URL", cfg.Drafter.Claude.BaseURL)

	cfg.Log.Level = env.GetEnvString("LOG_LEVEL", cfg.Log.Level)

	cfg.Tracing.Enabled = env.GetEnvBool("TRACING_ENABLED", cfg.Tracing.Enabled)
	cfg.Tracing.ServiceName = env.GetEnvString("OTEL_SERVICE_NAME", cfg.Tracing.ServiceName)
	cfg.Tracing.SampleRatio = env.GetEnvFloat("TRACING_SAMPLE_RATIO", cfg.Tracing.SampleRatio)
}

// Validate checks every field and reports all problems at once.
func (c *AppConfig) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server addr is required"))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server timeouts must be positive"))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("server max_body_bytes must be positive"))
	}
	if c.Generate.RatePerSec <= 0 {
		errs = append(errs, fmt.Errorf("generate rate_per_sec must be positive, got %v", c.Generate.RatePerSec))
	}
	if c.Generate.Burst < 1 {
		errs = append(errs, fmt.Errorf("generate burst must be at least 1, got %d", c.Generate.Burst))
	}
	if c.Drafter.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("drafter timeout must be positive, got %v", c.Drafter.Timeout))
	}
	if c.Drafter.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("drafter max_tokens must be positive, got %d", c.Drafter.MaxTokens))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing sample_ratio must be within [0, 1], got %v", c.Tracing.SampleRatio))
	}

	return errors.Join(errs...)
}
