package types

import (
	"errors"
	"fmt"
)

// WorkflowID names a crew.
type WorkflowID string

const (
	WorkflowML                   WorkflowID = "ml"
	WorkflowResearch             WorkflowID = "research"
	WorkflowResearchAcademic     WorkflowID = "research_academic"
	WorkflowResearchContent      WorkflowID = "research_content"
	WorkflowBusinessIntelligence WorkflowID = "business_intelligence"
	WorkflowDevCode              WorkflowID = "dev_code"
	WorkflowDocumentation        WorkflowID = "documentation"
)

// Workflows lists the built-in crews in display order.
var Workflows = []WorkflowID{
	WorkflowML,
	WorkflowResearch,
	WorkflowResearchAcademic,
	WorkflowResearchContent,
	WorkflowBusinessIntelligence,
	WorkflowDevCode,
	WorkflowDocumentation,
}

// Process is the execution mode requested for a crew.
type Process string

const (
	ProcessSequential   Process = "sequential"
	ProcessHierarchical Process = "hierarchical"
)

func ParseProcess(s string) (Process, error) {
	switch Process(s) {
	case ProcessSequential, ProcessHierarchical:
		return Process(s), nil
	case "":
		return ProcessSequential, nil
	default:
		return "", fmt.Errorf("invalid process type: %s", s)
	}
}

// AgentRef indexes WorkflowSpec.Agents.
type AgentRef int

// TaskRef indexes WorkflowSpec.Tasks.
type TaskRef int

// Member binds a crew-local name to a catalog persona.
type Member struct {
	Name  string
	Agent AgentSpec
}

// WorkflowSpec is a named crew: ordered members plus ordered, dependency
// annotated tasks. Tasks are stored in execution order.
type WorkflowSpec struct {
	ID          WorkflowID
	Name        string
	Description string
	Process     Process
	Agents      []Member
	Tasks       []TaskSpec
	Inputs      map[string]string // defaults, overridable per run
}

var ErrInvalidWorkflow = errors.New("invalid workflow")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidWorkflow, fmt.Sprintf(format, args...))
}

// Validate checks the structural invariants the engine relies on: every
// task's agent is a member and every dependency precedes the task.
func (w *WorkflowSpec) Validate() error {
	if len(w.Agents) == 0 {
		return invalidf("no agents defined")
	}
	if len(w.Tasks) == 0 {
		return invalidf("no tasks defined")
	}

	names := make(map[string]bool)
	for _, m := range w.Agents {
		if m.Name == "" {
			return invalidf("agent missing name")
		}
		if names[m.Name] {
			return invalidf("duplicate agent name: %s", m.Name)
		}
		names[m.Name] = true
	}

	taskNames := make(map[string]bool)
	files := make(map[string]bool)
	for i, t := range w.Tasks {
		if t.Name == "" {
			return invalidf("task %d missing name", i)
		}
		if taskNames[t.Name] {
			return invalidf("duplicate task name: %s", t.Name)
		}
		taskNames[t.Name] = true

		if t.OutputFile == "" {
			return invalidf("task %s has no output file", t.Name)
		}
		if files[t.OutputFile] {
			return invalidf("output file %s used by more than one task", t.OutputFile)
		}
		files[t.OutputFile] = true

		if int(t.Agent) < 0 || int(t.Agent) >= len(w.Agents) {
			return invalidf("task %s references unknown agent %d", t.Name, t.Agent)
		}
		for _, dep := range t.DependsOn {
			if int(dep) < 0 || int(dep) >= i {
				return invalidf("task %s depends on task %d which is not declared before it", t.Name, dep)
			}
		}
	}
	return nil
}

// Member returns the member registered under name.
func (w *WorkflowSpec) Member(name string) (AgentRef, bool) {
	for i, m := range w.Agents {
		if m.Name == name {
			return AgentRef(i), true
		}
	}
	return -1, false
}

func (w *WorkflowSpec) TaskByName(name string) (TaskRef, bool) {
	for i, t := range w.Tasks {
		if t.Name == name {
			return TaskRef(i), true
		}
	}
	return -1, false
}

// AgentFor returns the persona assigned to a task.
func (w *WorkflowSpec) AgentFor(t TaskSpec) Member {
	return w.Agents[t.Agent]
}

// MemberNames returns member names in declaration order.
func (w *WorkflowSpec) MemberNames() []string {
	names := make([]string, len(w.Agents))
	for i, m := range w.Agents {
		names[i] = m.Name
	}
	return names
}
