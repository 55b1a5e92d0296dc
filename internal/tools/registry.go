// Package tools holds the capabilities agents can draw reference material from.
package tools

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"Crewflow/pkg/types"

	"go.uber.org/zap"
)

// Call carries what a tool gets to work with for one task.
type Call struct {
	Query  string
	Inputs map[string]string
}

type Tool interface {
	Name() types.Tool
	Title() string
	Description() string
	Run(ctx context.Context, call Call) (string, error)
}

// Registry maps capability tags to available tools. A tag with no registered
// tool is simply unavailable for the run.
type Registry struct {
	mu     sync.RWMutex
	tools  map[types.Tool]Tool
	logger *zap.Logger
}

func NewRegistry(logger *zap.Logger, tools ...Tool) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		tools:  make(map[types.Tool]Tool),
		logger: logger.With(zap.String("component", "tools")),
	}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Options selects the optional tools of the default registry.
type Options struct {
	SerperAPIKey string
	SerperURL    string
}

// Default registers the static ML reference tools, plus web search when a
// Serper key is configured.
func Default(opts Options, logger *zap.Logger) *Registry {
	r := NewRegistry(logger, MLTools()...)
	if opts.SerperAPIKey != "" {
		r.Register(NewSerper(opts.SerperAPIKey, opts.SerperURL))
	}
	return r
}

func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

func (r *Registry) Get(name types.Tool) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

func (r *Registry) Enabled(name types.Tool) bool {
	_, ok := r.Get(name)
	return ok
}

// Notes runs every registered tool the agent carries and renders the results
// as Markdown sections, in the agent's tool order. Tool failures are logged
// and skipped.
func (r *Registry) Notes(ctx context.Context, agent types.AgentSpec, call Call) string {
	var sections []string
	for _, name := range agent.Tools {
		t, ok := r.Get(name)
		if !ok {
			continue
		}
		if name == types.ToolWebSearch && strings.TrimSpace(call.Query) == "" {
			continue
		}
		out, err := t.Run(ctx, call)
		if err != nil {
			r.logger.Warn("tool failed", zap.String("tool", string(name)), zap.Error(err))
			continue
		}
		if out = strings.TrimSpace(out); out != "" {
			sections = append(sections, fmt.Sprintf("## %s\n\n%s", t.Title(), out))
		}
	}
	return strings.Join(sections, "\n\n")
}
