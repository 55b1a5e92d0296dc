// Package tasks defines the task templates each crew is built from.
package tasks

import (
	"path"
	"regexp"

	"Crewflow/pkg/types"
)

// Template is the static text of one task. File is the report name written
// under the workflow's output directory.
type Template struct {
	Name           string
	Workflow       types.WorkflowID
	File           string
	Description    string
	ExpectedOutput string
	// Query seeds the web search tool when the agent carries it.
	Query string
}

// OutputPath is the workflow-scoped, slash-separated report path.
func (t Template) OutputPath() string {
	return path.Join(string(t.Workflow), t.File)
}

// Build binds a template to an agent and its upstream tasks. dependsOn is
// copied in the order given; it becomes the context order at run time.
func Build(tmpl Template, agent types.AgentRef, dependsOn ...types.TaskRef) types.TaskSpec {
	var deps []types.TaskRef
	if len(dependsOn) > 0 {
		deps = make([]types.TaskRef, len(dependsOn))
		copy(deps, dependsOn)
	}
	return types.TaskSpec{
		Name:           tmpl.Name,
		Description:    tmpl.Description,
		ExpectedOutput: tmpl.ExpectedOutput,
		OutputFile:     tmpl.OutputPath(),
		Query:          tmpl.Query,
		Agent:          agent,
		DependsOn:      deps,
	}
}

var placeholder = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Interpolate replaces {key} placeholders with values from inputs. Unknown
// keys are left untouched.
func Interpolate(text string, inputs map[string]string) string {
	if len(inputs) == 0 {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		key := m[1 : len(m)-1]
		if v, ok := inputs[key]; ok {
			return v
		}
		return m
	})
}

// Placeholders lists the distinct keys referenced by text, in first-seen order.
func Placeholders(text string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, m := range placeholder.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}
