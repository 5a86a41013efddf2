// Package groq holds the Groq price table and a usage probe that measures
// real token counts through Groq's OpenAI-compatible API using the official SDK.
package groq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/terra/internal/domain"
	"github.com/davidbz/terra/internal/observability"
)

// Prober implements domain.UsageProbe against Groq.
type Prober struct {
	client openai.Client
	name   string
}

// NewProber creates a new Groq usage probe.
func NewProber(config Config) (*Prober, error) {
	if config.APIKey == "" {
		return nil, errors.New("Groq API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Prober{
		client: openai.NewClient(opts...),
		name:   "groq",
	}, nil
}

// Measure sends prompt as a single user message and reports the tokens used.
func (p *Prober) Measure(ctx context.Context, model domain.ModelID, prompt string) (*domain.TokenSample, error) {
	apiModel, ok := APIModel(model)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownModel, model)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Groq API", observability.String("api_model", apiModel))

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(apiModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		logger.Error("Groq API call failed", observability.Error(err))
		return nil, fmt.Errorf("Groq API call failed: %w", err)
	}

	logger.Debug("Groq API call succeeded",
		observability.Int64("prompt_tokens", resp.Usage.PromptTokens),
		observability.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return &domain.TokenSample{
		Model:            model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}

// Name returns the probe identifier.
func (p *Prober) Name() string {
	return p.name
}
