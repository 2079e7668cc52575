package drafter

import "time"

// Config selects and tunes the draft provider.
// API keys are never read from the YAML file; they come from the environment only.
type Config struct {
	Provider  string        `yaml:"provider"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxTokens int           `yaml:"max_tokens"`
	OpenAI    RemoteConfig  `yaml:"openai"`
	Claude    RemoteConfig  `yaml:"claude"`
}

// RemoteConfig holds the settings of one remote API.
type RemoteConfig struct {
	APIKey       string `yaml:"-"`
	BaseURL      string `yaml:"base_url"`
	DefaultModel string `yaml:"default_model"`
}

// DefaultConfig returns the template provider with sane remote defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  ProviderTemplate,
		Timeout:   60 * time.Second,
		MaxTokens: 1024,
		OpenAI:    RemoteConfig{DefaultModel: "gpt-4o-mini"},
		Claude:    RemoteConfig{DefaultModel: "claude-sonnet-4-5-20250929"},
	}
}
