// Package engine executes an assembled workflow task by task.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"Crewflow/internal/agent"
	"Crewflow/internal/llm"
	"Crewflow/internal/memory"
	"Crewflow/internal/tasks"
	"Crewflow/internal/tools"
	"Crewflow/pkg/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskRunner executes a single assignment.
type TaskRunner interface {
	RunTask(ctx context.Context, a agent.Assignment) (*agent.Result, error)
}

// Indexer receives every report written during a run.
type Indexer interface {
	StoreReport(ctx context.Context, runID string, workflow types.WorkflowID, out types.TaskOutput) error
}

// TaskError reports the task a run stopped at.
type TaskError struct {
	Task  string
	Index int
	Err   error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %s (#%d) failed: %v", e.Task, e.Index+1, e.Err)
}

func (e *TaskError) Unwrap() error { return e.Err }

// Executor runs tasks sequentially in declaration order. Each task sees the
// outputs of its dependencies in the order they were declared.
type Executor struct {
	runner     TaskRunner
	tools      *tools.Registry
	index      Indexer
	tracker    *llm.Tracker
	outputsDir string
	logger     *zap.Logger
	now        func() time.Time
}

type Option func(*Executor)

func WithTools(r *tools.Registry) Option {
	return func(e *Executor) { e.tools = r }
}

// WithIndex mirrors every report into a search index. Index failures are
// logged and never fail the run.
func WithIndex(idx Indexer) Option {
	return func(e *Executor) { e.index = idx }
}

func WithTracker(t *llm.Tracker) Option {
	return func(e *Executor) { e.tracker = t }
}

func WithOutputsDir(dir string) Option {
	return func(e *Executor) { e.outputsDir = dir }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

func NewExecutor(runner TaskRunner, opts ...Option) *Executor {
	e := &Executor{
		runner:     runner,
		outputsDir: "outputs",
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.tools == nil {
		e.tools = tools.NewRegistry(e.logger)
	}
	e.logger = e.logger.With(zap.String("component", "engine"))
	return e
}

// Execute runs wf with the given inputs. On failure it returns the partial
// result together with a *TaskError; reports already written stay on disk.
func (e *Executor) Execute(ctx context.Context, wf *types.WorkflowSpec, inputs map[string]string) (*types.ExecutionResult, error) {
	if err := wf.Validate(); err != nil {
		return nil, err
	}
	if e.runner == nil {
		return nil, errors.New("engine has no task runner")
	}
	if err := os.MkdirAll(e.outputsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create outputs directory: %w", err)
	}

	start := e.now()
	result := &types.ExecutionResult{
		RunID:    uuid.New().String(),
		Workflow: wf.ID,
	}
	log := e.logger.With(zap.String("workflow", string(wf.ID)), zap.String("run_id", result.RunID))

	if wf.Process == types.ProcessHierarchical {
		log.Warn("hierarchical process requested; running tasks in declared order")
	}
	log.Info("starting workflow",
		zap.String("process", string(wf.Process)),
		zap.Int("agents", len(wf.Agents)),
		zap.Int("tasks", len(wf.Tasks)))

	store := memory.NewStore()
	defer store.Close()

	finish := func() {
		result.Outputs = store.History()
		if last, ok := store.Last(); ok {
			result.Final = last.Content
		}
		result.Duration = e.now().Sub(start)
		if e.tracker != nil {
			result.Usage = e.tracker.Usage()
		}
	}

	for i, task := range wf.Tasks {
		if err := ctx.Err(); err != nil {
			finish()
			return result, &TaskError{Task: task.Name, Index: i, Err: err}
		}
		out, err := e.runTask(ctx, wf, types.TaskRef(i), task, inputs, store)
		if err != nil {
			log.Error("task failed", zap.String("task", task.Name), zap.Error(err))
			finish()
			return result, &TaskError{Task: task.Name, Index: i, Err: err}
		}
		result.Files = append(result.Files, out.File)

		if e.index != nil {
			if err := e.index.StoreReport(ctx, result.RunID, wf.ID, out); err != nil {
				log.Warn("failed to index report", zap.String("task", task.Name), zap.Error(err))
			}
		}
	}

	finish()
	log.Info("workflow complete", zap.Duration("duration", result.Duration), zap.Int("reports", store.Count()))
	return result, nil
}

func (e *Executor) runTask(ctx context.Context, wf *types.WorkflowSpec, ref types.TaskRef, task types.TaskSpec, inputs map[string]string, store *memory.Store) (types.TaskOutput, error) {
	member := wf.AgentFor(task)

	resolved := task
	resolved.Description = tasks.Interpolate(task.Description, inputs)
	resolved.ExpectedOutput = tasks.Interpolate(task.ExpectedOutput, inputs)
	resolved.Query = tasks.Interpolate(task.Query, inputs)

	depContext, err := store.Context(task.DependsOn)
	if err != nil {
		return types.TaskOutput{}, err
	}
	notes := e.tools.Notes(ctx, member.Agent, tools.Call{Query: resolved.Query, Inputs: inputs})

	res, err := e.runner.RunTask(ctx, agent.Assignment{
		Task:      resolved,
		Member:    member,
		Context:   depContext,
		ToolNotes: notes,
	})
	if err != nil {
		return types.TaskOutput{}, err
	}

	path := filepath.Join(e.outputsDir, filepath.FromSlash(task.OutputFile))
	if err := writeReport(path, res.Output); err != nil {
		return types.TaskOutput{}, err
	}

	out := types.TaskOutput{
		Task:      ref,
		Name:      task.Name,
		Agent:     member.Name,
		Content:   res.Output,
		File:      path,
		Timestamp: e.now(),
	}
	if err := store.Add(out); err != nil {
		return types.TaskOutput{}, err
	}
	e.logger.Info("report written", zap.String("task", task.Name), zap.String("file", path))
	return out, nil
}

// writeReport overwrites path with content.
func writeReport(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
