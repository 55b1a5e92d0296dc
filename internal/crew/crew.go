// Package crew assembles the built-in workflows and hands them to an engine.
package crew

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"Crewflow/internal/catalog"
	"Crewflow/pkg/types"
)

var ErrUnknownWorkflow = errors.New("unknown workflow")

// Info is the listing entry for a built-in workflow.
type Info struct {
	ID          types.WorkflowID
	Name        string
	Description string
	Steps       []string
}

// OptionList is a named set of values a workflow input accepts.
type OptionList struct {
	Name   string
	Values []string
}

// Description is the detailed view of one workflow.
type Description struct {
	Info
	Spec    *types.WorkflowSpec
	Options []OptionList
}

type options struct {
	cat     *catalog.Catalog
	process types.Process
}

type Option func(*options)

func WithCatalog(c *catalog.Catalog) Option {
	return func(o *options) { o.cat = c }
}

// WithProcess overrides the execution process recorded on the workflow.
func WithProcess(p types.Process) Option {
	return func(o *options) { o.process = p }
}

// Assemble builds the workflow registered under id. Unknown ids fail with
// ErrUnknownWorkflow.
func Assemble(id types.WorkflowID, opts ...Option) (*types.WorkflowSpec, error) {
	def, ok := definitions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkflow, id)
	}
	o := options{process: types.ProcessSequential}
	for _, opt := range opts {
		opt(&o)
	}

	b := NewBuilder(id, def.info.Name, o.cat).
		Describe(def.info.Description).
		Process(o.process)
	for k, v := range def.inputs {
		b.Input(k, v)
	}
	def.build(b)
	return b.Build()
}

// Known reports whether id names a built-in workflow.
func Known(id string) bool {
	_, ok := definitions[types.WorkflowID(id)]
	return ok
}

// Infos lists the built-in workflows in display order.
func Infos() []Info {
	out := make([]Info, 0, len(types.Workflows))
	for _, id := range types.Workflows {
		out = append(out, definitions[id].info)
	}
	return out
}

// Describe returns the assembled workflow together with its listing info and
// the option lists its inputs accept.
func Describe(id types.WorkflowID, opts ...Option) (*Description, error) {
	spec, err := Assemble(id, opts...)
	if err != nil {
		return nil, err
	}
	def := definitions[id]
	return &Description{Info: def.info, Spec: spec, Options: def.options}, nil
}

// Engine executes an assembled workflow.
type Engine interface {
	Execute(ctx context.Context, wf *types.WorkflowSpec, inputs map[string]string) (*types.ExecutionResult, error)
}

// Run validates wf, layers inputs over its defaults and delegates to engine.
func Run(ctx context.Context, engine Engine, wf *types.WorkflowSpec, inputs map[string]string) (*types.ExecutionResult, error) {
	if engine == nil {
		return nil, errors.New("no execution engine configured")
	}
	if err := wf.Validate(); err != nil {
		return nil, err
	}
	return engine.Execute(ctx, wf, MergeInputs(wf.Inputs, inputs))
}

// MergeInputs returns defaults overlaid with overrides. Neither map is modified.
func MergeInputs(defaults, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(overrides))
	maps.Copy(merged, defaults)
	maps.Copy(merged, overrides)
	return merged
}
