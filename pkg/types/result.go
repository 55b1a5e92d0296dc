package types

import "time"

// TaskOutput is the recorded result of one completed task.
type TaskOutput struct {
	Task      TaskRef
	Name      string
	Agent     string
	Content   string
	File      string // absolute path of the written report
	Timestamp time.Time
}

// Usage aggregates token counts reported by the LLM provider.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
	Calls        int
}

// ExecutionResult is what a workflow run hands back to the caller.
type ExecutionResult struct {
	RunID    string
	Workflow WorkflowID
	Outputs  []TaskOutput
	Final    string
	Files    []string
	Usage    Usage
	Duration time.Duration
}
