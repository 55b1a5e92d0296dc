package parser

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"Crewflow/pkg/types"
)

var ErrInvalidCrew = errors.New("invalid crew file")

// ValidationError points at the offending part of a crew file.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidCrew }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

func validate(config *types.CrewConfig) error {
	if config.Workflow.ID == "" {
		return invalid("workflow.id", "missing")
	}
	if !idPattern.MatchString(config.Workflow.ID) {
		return invalid("workflow.id", "%q must be lowercase letters, digits, '_' or '-'", config.Workflow.ID)
	}
	if _, err := types.ParseProcess(config.Workflow.Process); err != nil {
		return invalid("workflow.process", "%v", err)
	}

	if len(config.Agents) == 0 {
		return invalid("agents", "no agents defined")
	}
	agentNames := make(map[string]bool)
	for i, agent := range config.Agents {
		field := fmt.Sprintf("agents[%d]", i)
		if agent.Name == "" {
			return invalid(field, "agent missing name")
		}
		if agentNames[agent.Name] {
			return invalid(field, "duplicate agent name: %s", agent.Name)
		}
		agentNames[agent.Name] = true
		if err := validateAgent(field, agent); err != nil {
			return err
		}
	}

	if len(config.Tasks) == 0 {
		return invalid("tasks", "no tasks defined")
	}
	declared := make(map[string]bool)
	files := make(map[string]bool)
	for i, task := range config.Tasks {
		field := fmt.Sprintf("tasks[%d]", i)
		if task.Name == "" {
			return invalid(field, "task missing name")
		}
		if declared[task.Name] {
			return invalid(field, "duplicate task name: %s", task.Name)
		}
		if !agentNames[task.Agent] {
			return invalid(field, "unknown agent: %q", task.Agent)
		}
		if strings.TrimSpace(task.Description) == "" {
			return invalid(field, "task %s has no description", task.Name)
		}
		if strings.TrimSpace(task.ExpectedOutput) == "" {
			return invalid(field, "task %s has no expected_output", task.Name)
		}
		file := outputFile(task)
		if err := validateOutputFile(file); err != nil {
			return invalid(field, "output_file: %v", err)
		}
		if files[file] {
			return invalid(field, "output file %s used by more than one task", file)
		}
		files[file] = true
		for _, dep := range task.DependsOn {
			if !declared[dep] {
				return invalid(field, "depends_on %q must name a task declared earlier", dep)
			}
		}
		declared[task.Name] = true
	}
	return nil
}

func validateAgent(field string, agent types.AgentDef) error {
	inline := agent.Role != "" || agent.Goal != "" || agent.Backstory != ""
	if agent.Catalog != "" {
		if inline {
			return invalid(field, "agent %s sets both catalog and an inline persona", agent.Name)
		}
		if _, err := types.ParseRole(agent.Catalog); err != nil {
			return invalid(field, "%v", err)
		}
	} else if agent.Role == "" || agent.Goal == "" || agent.Backstory == "" {
		return invalid(field, "agent %s needs a catalog role or role, goal and backstory", agent.Name)
	}
	for _, tool := range agent.Tools {
		if _, err := types.ParseTool(tool); err != nil {
			return invalid(field, "%v", err)
		}
	}
	return nil
}

// outputFile defaults to <task name>.md.
func outputFile(task types.TaskDef) string {
	if task.OutputFile == "" {
		return task.Name + ".md"
	}
	return task.OutputFile
}

func validateOutputFile(file string) error {
	if path.IsAbs(file) || strings.Contains(file, `\`) {
		return fmt.Errorf("%q must be a relative slash-separated path", file)
	}
	clean := path.Clean(file)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%q escapes the outputs directory", file)
	}
	return nil
}
