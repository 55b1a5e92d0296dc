// Package agent runs one task on behalf of a crew member.
package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Crewflow/internal/llm"
	"Crewflow/pkg/types"

	"go.uber.org/zap"
)

// Assignment is a task ready to be executed: text already interpolated,
// dependency context and tool notes already gathered.
type Assignment struct {
	Task      types.TaskSpec
	Member    types.Member
	Context   string
	ToolNotes string
}

// Result is the cleaned output of a task plus the raw provider response.
type Result struct {
	Output   string
	Raw      *llm.Response
	Duration time.Duration
}

type Runner struct {
	client    llm.Client
	tracker   *llm.Tracker
	maxTokens int
	logger    *zap.Logger
}

type RunnerOption func(*Runner)

func WithTracker(t *llm.Tracker) RunnerOption {
	return func(r *Runner) { r.tracker = t }
}

func WithMaxTokens(n int) RunnerOption {
	return func(r *Runner) { r.maxTokens = n }
}

func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRunner(client llm.Client, opts ...RunnerOption) *Runner {
	r := &Runner{
		client:    client,
		maxTokens: llm.DefaultMaxTokens,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(zap.String("component", "agent"))
	return r
}

func (r *Runner) RunTask(ctx context.Context, a Assignment) (*Result, error) {
	r.logger.Info("running task",
		zap.String("task", a.Task.Name),
		zap.String("agent", a.Member.Name),
		zap.String("role", a.Member.Agent.Role))

	start := time.Now()
	resp, err := r.client.Generate(ctx, llm.Request{
		System:    a.Member.Agent.GetPrompt(),
		Prompt:    BuildTaskPrompt(a),
		MaxTokens: r.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("agent %s failed: %w", a.Member.Name, err)
	}
	if r.tracker != nil {
		r.tracker.Add(resp)
	}

	output := CleanOutput(resp.Text)
	if output == "" {
		return nil, fmt.Errorf("agent %s returned an empty answer", a.Member.Name)
	}

	elapsed := time.Since(start)
	r.logger.Debug("task complete",
		zap.String("task", a.Task.Name),
		zap.Duration("elapsed", elapsed),
		zap.Int("chars", len(output)))

	return &Result{Output: output, Raw: resp, Duration: elapsed}, nil
}

// BuildTaskPrompt renders the user prompt for an assignment.
func BuildTaskPrompt(a Assignment) string {
	var sb strings.Builder
	sb.WriteString("Current Task: ")
	sb.WriteString(strings.TrimSpace(a.Task.Description))
	sb.WriteString("\n\nThis is the expected criteria for your final answer: ")
	sb.WriteString(strings.TrimSpace(a.Task.ExpectedOutput))
	sb.WriteString("\nYou MUST return the actual complete content as the final answer, not a summary. ")
	sb.WriteString("Format it as a Markdown document.")

	if a.ToolNotes != "" {
		sb.WriteString("\n\n# Reference material from your tools\n\n")
		sb.WriteString(a.ToolNotes)
	}
	if a.Context != "" {
		sb.WriteString("\n\n# Context from previous tasks\n\n")
		sb.WriteString(a.Context)
	}
	return sb.String()
}
