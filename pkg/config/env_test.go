package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "  value ")
	assert.Equal(t, "value", GetEnvString("TEST_STR", "def"))

	t.Setenv("TEST_STR", "")
	assert.Equal(t, "def", GetEnvString("TEST_STR", "def"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "unset", value: "", want: 7},
		{name: "valid", value: "42", want: 42},
		{name: "negative", value: "-3", want: -3},
		{name: "invalid", value: "abc", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("TEST_INT", 7))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.5")
	assert.InDelta(t, 0.5, GetEnvFloat("TEST_FLOAT", 2), 1e-9)

	t.Setenv("TEST_FLOAT", "half")
	assert.InDelta(t, 2.0, GetEnvFloat("TEST_FLOAT", 2), 1e-9)
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "", want: true},
		{value: "false", want: false},
		{value: "0", want: false},
		{value: "TRUE", want: true},
		{value: "maybe", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DUR", time.Second))

	t.Setenv("TEST_DUR", "soon")
	assert.Equal(t, time.Second, GetEnvDuration("TEST_DUR", time.Second))
}

func TestInvalidSecretIsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Setenv("DRAFTER_API_KEY", "sk-live-not-a-number")
	assert.Equal(t, 3, GetEnvInt("DRAFTER_API_KEY", 3))
	assert.NotContains(t, buf.String(), "sk-live")
	assert.Contains(t, buf.String(), "****")

	buf.Reset()
	t.Setenv("GENERATE_BURST", "lots")
	assert.Equal(t, 5, GetEnvInt("GENERATE_BURST", 5))
	assert.Contains(t, buf.String(), "lots")
}

func TestSecret(t *testing.T) {
	assert.True(t, secret("OPENAI_API_KEY"))
	assert.True(t, secret("database_url"))
	assert.True(t, secret("WEBHOOK_SECRET"))
	assert.False(t, secret("HTTP_ADDR"))
	assert.False(t, secret("KEYWORDS"))
}
