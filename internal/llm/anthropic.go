package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"
)

type AnthropicConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the API host, mainly for tests.
	BaseURL string
}

// Anthropic calls the Messages API through the official SDK.
type Anthropic struct {
	inner  anthropic.Client
	model  anthropic.Model
	logger *zap.Logger
}

func NewAnthropic(cfg AnthropicConfig, logger *zap.Logger) (*Anthropic, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY is not set")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := anthropic.Model(cfg.Model)
	if model == "" {
		model = anthropic.ModelClaudeSonnet4_20250514
	}
	return &Anthropic{
		inner:  anthropic.NewClient(opts...),
		model:  model,
		logger: logger.With(zap.String("component", "llm"), zap.String("provider", ProviderAnthropic)),
	}, nil
}

func (a *Anthropic) Name() string { return ProviderAnthropic }

func (a *Anthropic) Generate(ctx context.Context, req Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	params := anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	start := time.Now()
	resp, err := a.inner.Messages.New(ctx, params)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(variant.Text)
		}
	}

	a.logger.Debug("completion",
		zap.String("model", string(a.model)),
		zap.Duration("latency", time.Since(start)),
		zap.Int64("input_tokens", resp.Usage.InputTokens),
		zap.Int64("output_tokens", resp.Usage.OutputTokens))

	return &Response{
		Text:         sb.String(),
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}
