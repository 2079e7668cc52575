package drafter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"article-hub/internal/usecase/article"
)

// Claude drafts articles with Anthropic's Messages API.
// System messages are joined into the system prompt; the rest keep their order.
type Claude struct {
	remote
	client       anthropic.Client
	defaultModel string
	maxTokens    int
}

// NewClaude creates a Claude drafter. cfg.BaseURL overrides the API endpoint when set.
// The SDK's own retries are disabled; retry.Do owns that policy.
func NewClaude(cfg RemoteConfig, timeout time.Duration, maxTokens int, opts ...Option) *Claude {
	if maxTokens <= 0 {
		maxTokens = DefaultConfig().MaxTokens
	}
	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}

	slog.Info("initialized Claude drafter",
		slog.String("default_model", cfg.DefaultModel),
		slog.Int("max_tokens", maxTokens))

	return &Claude{
		remote:       newRemote(ProviderClaude, timeout, opts),
		client:       anthropic.NewClient(clientOpts...),
		defaultModel: cfg.DefaultModel,
		maxTokens:    maxTokens,
	}
}

func (c *Claude) Name() string { return ProviderClaude }

// Draft sends the conversation to the Messages API.
func (c *Claude) Draft(ctx context.Context, req article.DraftRequest) (*article.Draft, error) {
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	var system []string
	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Content == nil {
			continue
		}
		switch m.Role {
		case article.RoleSystem:
			system = append(system, *m.Content)
		case article.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(*m.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(*m.Content)))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(c.maxTokens),
		Messages:  messages,
	}
	if len(system) > 0 {
		params.System = []anthropic.TextBlockParam{{Text: strings.Join(system, "\n\n")}}
	}

	return c.run(ctx, func(ctx context.Context) (string, error) {
		message, err := c.client.Messages.New(ctx, params)
		if err != nil {
			return "", claudeError(err)
		}
		var sb strings.Builder
		for _, block := range message.Content {
			if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
				sb.WriteString(tb.Text)
			}
		}
		return sb.String(), nil
	})
}

func claudeError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return statusError(ProviderClaude, apiErr.StatusCode, err)
	}
	return statusError(ProviderClaude, 0, err)
}
