package crew

import (
	"fmt"

	"Crewflow/internal/catalog"
	"Crewflow/internal/tasks"
	"Crewflow/pkg/types"
)

// Builder assembles a WorkflowSpec. Agents and tasks live in ordered arenas
// and are referenced by index, so a task can only depend on tasks that were
// added before it. The first error sticks and is reported by Build.
type Builder struct {
	spec types.WorkflowSpec
	cat  *catalog.Catalog
	err  error
}

func NewBuilder(id types.WorkflowID, name string, cat *catalog.Catalog) *Builder {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Builder{
		spec: types.WorkflowSpec{
			ID:      id,
			Name:    name,
			Process: types.ProcessSequential,
			Inputs:  make(map[string]string),
		},
		cat: cat,
	}
}

func (b *Builder) Describe(description string) *Builder {
	b.spec.Description = description
	return b
}

func (b *Builder) Process(p types.Process) *Builder {
	b.spec.Process = p
	return b
}

// Input sets a default workflow input.
func (b *Builder) Input(key, value string) *Builder {
	b.spec.Inputs[key] = value
	return b
}

// AddAgent registers a catalog persona under a crew-local member name.
func (b *Builder) AddAgent(name string, role types.Role) types.AgentRef {
	spec, err := b.cat.Lookup(role)
	if err != nil {
		b.fail(fmt.Errorf("agent %s: %w", name, err))
		return -1
	}
	return b.AddMember(name, spec)
}

// AddMember registers an already resolved persona.
func (b *Builder) AddMember(name string, spec types.AgentSpec) types.AgentRef {
	if _, dup := b.spec.Member(name); dup {
		b.fail(fmt.Errorf("%w: duplicate agent name: %s", types.ErrInvalidWorkflow, name))
		return -1
	}
	b.spec.Agents = append(b.spec.Agents, types.Member{Name: name, Agent: spec})
	return types.AgentRef(len(b.spec.Agents) - 1)
}

// AddTask appends a task built from tmpl. Every dependency must already be
// in the arena.
func (b *Builder) AddTask(tmpl tasks.Template, agent types.AgentRef, dependsOn ...types.TaskRef) types.TaskRef {
	return b.Add(tasks.Build(tmpl, agent, dependsOn...))
}

// Add appends a fully formed task.
func (b *Builder) Add(task types.TaskSpec) types.TaskRef {
	next := types.TaskRef(len(b.spec.Tasks))
	if task.Agent < 0 || int(task.Agent) >= len(b.spec.Agents) {
		b.fail(fmt.Errorf("%w: task %s references unknown agent %d", types.ErrInvalidWorkflow, task.Name, task.Agent))
		return -1
	}
	for _, dep := range task.DependsOn {
		if dep < 0 || dep >= next {
			b.fail(fmt.Errorf("%w: task %s depends on task %d which is not declared before it",
				types.ErrInvalidWorkflow, task.Name, dep))
			return -1
		}
	}
	b.spec.Tasks = append(b.spec.Tasks, task)
	return next
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates and returns the workflow.
func (b *Builder) Build() (*types.WorkflowSpec, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build workflow %s: %w", b.spec.ID, b.err)
	}
	spec := b.spec
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("build workflow %s: %w", b.spec.ID, err)
	}
	return &spec, nil
}
