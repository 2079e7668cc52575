package drafter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"article-hub/internal/usecase/article"
)

// OpenAI drafts articles with the OpenAI chat completion API.
type OpenAI struct {
	remote
	client       *openai.Client
	defaultModel string
	maxTokens    int
}

// NewOpenAI creates an OpenAI drafter. cfg.BaseURL overrides the API endpoint when set.
func NewOpenAI(cfg RemoteConfig, timeout time.Duration, maxTokens int, opts ...Option) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	slog.Info("initialized OpenAI drafter",
		slog.String("default_model", cfg.DefaultModel),
		slog.Int("max_tokens", maxTokens))

	return &OpenAI{
		remote:       newRemote(ProviderOpenAI, timeout, opts),
		client:       openai.NewClientWithConfig(clientCfg),
		defaultModel: cfg.DefaultModel,
		maxTokens:    maxTokens,
	}
}

func (o *OpenAI) Name() string { return ProviderOpenAI }

// Draft sends the request's messages to the chat completion endpoint.
func (o *OpenAI) Draft(ctx context.Context, req article.DraftRequest) (*article.Draft, error) {
	model := req.Model
	if model == "" {
		model = o.defaultModel
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msg := openai.ChatCompletionMessage{Role: m.Role, Name: m.Name}
		if m.Content != nil {
			msg.Content = *m.Content
		}
		messages = append(messages, msg)
	}

	return o.run(ctx, func(ctx context.Context) (string, error) {
		resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:     model,
			Messages:  messages,
			MaxTokens: o.maxTokens,
		})
		if err != nil {
			return "", openAIError(err)
		}
		if len(resp.Choices) == 0 {
			return "", nil
		}
		return resp.Choices[0].Message.Content, nil
	})
}

func openAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(ProviderOpenAI, apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusError(ProviderOpenAI, reqErr.HTTPStatusCode, err)
	}
	return statusError(ProviderOpenAI, 0, err)
}
