// Package drafter provides the article draft providers used by the generate use case.
// It includes a deterministic local template generator and adapters for the OpenAI
// and Anthropic (Claude) chat APIs wrapped with circuit breaker and retry logic.
package drafter

import (
	"log/slog"
	"strings"

	"article-hub/internal/usecase/article"
)

// Provider names accepted in Config.Provider.
const (
	ProviderTemplate = "template"
	ProviderOpenAI   = "openai"
	ProviderClaude   = "claude"
)

// New returns the drafter selected by cfg.Provider.
// Unknown names and remote providers without an API key yield an Unconfigured
// drafter, so the rest of the service keeps running and only generation fails.
func New(cfg Config, opts ...Option) article.Drafter {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))

	switch name {
	case ProviderTemplate:
		return NewTemplate()
	case ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return unconfigured(name, "OPENAI_API_KEY is not set")
		}
		return NewOpenAI(cfg.OpenAI, cfg.Timeout, cfg.MaxTokens, opts...)
	case ProviderClaude:
		if cfg.Claude.APIKey == "" {
			return unconfigured(name, "ANTHROPIC_API_KEY is not set")
		}
		return NewClaude(cfg.Claude, cfg.Timeout, cfg.MaxTokens, opts...)
	case "":
		return unconfigured("none", "DRAFTER_PROVIDER is empty")
	default:
		return unconfigured(name, "unknown provider")
	}
}

func unconfigured(name, reason string) *Unconfigured {
	slog.Warn("draft provider not configured, generation disabled",
		slog.String("provider", name),
		slog.String("reason", reason))
	return NewUnconfigured(name, reason)
}
