// Package llm provides the language model clients tasks are executed with.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"Crewflow/pkg/types"

	"go.uber.org/zap"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGroq      = "groq"
	ProviderLocal     = "local"
)

const DefaultMaxTokens = 4096

var ErrUnknownProvider = errors.New("unknown llm provider")

// Request is a single prompt-completion call.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

type Response struct {
	Text         string
	InputTokens  int64
	OutputTokens int64
}

// Client generates one completion per request.
type Client interface {
	Name() string
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Model binds a provider and model name to its credentials.
type Model struct {
	Provider  string
	Name      string
	Endpoint  string // base URL for OpenAI-compatible providers
	MaxTokens int
	APIKey    string
}

// New builds the client for m.Provider.
func New(m Model, logger *zap.Logger) (Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch strings.ToLower(m.Provider) {
	case ProviderOpenAI, "":
		return NewOpenAICompat(CompatConfig{
			Provider: ProviderOpenAI,
			BaseURL:  orDefault(m.Endpoint, "https://api.openai.com/v1"),
			APIKey:   m.APIKey,
			Model:    m.Name,
		}, logger), nil
	case ProviderGroq:
		return NewOpenAICompat(CompatConfig{
			Provider: ProviderGroq,
			BaseURL:  orDefault(m.Endpoint, "https://api.groq.com/openai/v1"),
			APIKey:   m.APIKey,
			Model:    m.Name,
		}, logger), nil
	case ProviderLocal, "ollama":
		if m.Endpoint == "" {
			return nil, fmt.Errorf("provider %s requires an endpoint", m.Provider)
		}
		return NewOpenAICompat(CompatConfig{
			Provider: ProviderLocal,
			BaseURL:  m.Endpoint,
			APIKey:   m.APIKey,
			Model:    m.Name,
		}, logger), nil
	case ProviderAnthropic:
		return NewAnthropic(AnthropicConfig{APIKey: m.APIKey, Model: m.Name}, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, m.Provider)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Tracker accumulates token usage across calls.
type Tracker struct {
	mu     sync.Mutex
	input  int64
	output int64
	calls  int
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Add(resp *Response) {
	if resp == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.input += resp.InputTokens
	t.output += resp.OutputTokens
	t.calls++
}

func (t *Tracker) Usage() types.Usage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return types.Usage{InputTokens: t.input, OutputTokens: t.output, Calls: t.calls}
}
