package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_SHUTDOWN_TIMEOUT",
		"GENERATE_RATE_PER_SEC", "GENERATE_BURST",
		"DRAFTER_PROVIDER", "DRAFTER_TIMEOUT", "DRAFTER_MAX_TOKENS",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "ANTHROPIC_API_KEY", "ANTHROPIC_BASE_URL",
		"LOG_LEVEL", "TRACING_ENABLED", "OTEL_SERVICE_NAME", "TRACING_SAMPLE_RATIO",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "template", cfg.Drafter.Provider)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
server:
  addr: ":9090"
  shutdown_timeout: 5s
generate:
  rate_per_sec: 0.5
  burst: 2
drafter:
  provider: openai
  timeout: 30s
  openai:
    base_url: http://localhost:1234/v1
    default_model: gpt-4o
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout, "unset keys keep defaults")
	assert.Equal(t, 0.5, cfg.Generate.RatePerSec)
	assert.Equal(t, 2, cfg.Generate.Burst)
	assert.Equal(t, "openai", cfg.Drafter.Provider)
	assert.Equal(t, 30*time.Second, cfg.Drafter.Timeout)
	assert.Equal(t, "http://localhost:1234/v1", cfg.Drafter.OpenAI.BaseURL)
	assert.Equal(t, "gpt-4o", cfg.Drafter.OpenAI.DefaultModel)
	assert.Empty(t, cfg.Drafter.OpenAI.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
drafter:
  provider: openai
generate:
  burst: 2
`)
	t.Setenv("DRAFTER_PROVIDER", "claude")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-xyz")
	t.Setenv("GENERATE_BURST", "9")
	t.Setenv("HTTP_ADDR", ":7000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "claude", cfg.Drafter.Provider)
	assert.Equal(t, "sk-ant-xyz", cfg.Drafter.Claude.APIKey)
	assert.Equal(t, 9, cfg.Generate.Burst)
	assert.Equal(t, ":7000", cfg.Server.Addr)
}

func TestLoad_APIKeyIgnoredInFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
drafter:
  openai:
    api_key: should-not-load
    APIKey: should-not-load
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Drafter.OpenAI.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "server: [",
			wantErr: "failed to parse config",
		},
		{
			name:    "zero burst",
			content: "generate:\n  burst: 0\n",
			wantErr: "burst must be at least 1",
		},
		{
			name:    "negative rate from env",
			env:     map[string]string{"GENERATE_RATE_PER_SEC": "-1"},
			wantErr: "rate_per_sec must be positive",
		},
		{
			name:    "sample ratio out of range",
			content: "tracing:\n  sample_ratio: 2\n",
			wantErr: "sample_ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.content != "" {
				path = writeFile(t, tt.content)
			}

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
